package game

import "testing"

func TestRateBoundaries(t *testing.T) {
	tests := []struct {
		score     int
		wantLabel string
		wantTier  int
	}{
		{-20, RatingNeedsDev, 1},
		{0, RatingNeedsDev, 1},
		{19, RatingNeedsDev, 1},
		{20, RatingLearner, 2},
		{49, RatingLearner, 2},
		{50, RatingDefender, 3},
		{99, RatingDefender, 3},
		{100, RatingGuardian, 4},
		{149, RatingGuardian, 4},
		{150, RatingLegend, 5},
		{160, RatingLegend, 5},
		{500, RatingLegend, 5},
	}

	for _, tt := range tests {
		got := Rate(tt.score)
		if got.Label != tt.wantLabel {
			t.Errorf("Rate(%d).Label = %q，期望 %q", tt.score, got.Label, tt.wantLabel)
		}
		if got.Tier != tt.wantTier {
			t.Errorf("Rate(%d).Tier = %d，期望 %d", tt.score, got.Tier, tt.wantTier)
		}
		if got.Stars != got.Tier {
			t.Errorf("Rate(%d).Stars = %d，应与Tier %d 相同", tt.score, got.Stars, got.Tier)
		}
		if got.Description == "" {
			t.Errorf("Rate(%d)缺少描述", tt.score)
		}
	}
}
