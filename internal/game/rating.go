package game

// PerformanceRating 表现评级
type PerformanceRating struct {
	Label       string `json:"label"`       // 评级名称
	Tier        int    `json:"tier"`        // 评级档位（1-5）
	Stars       int    `json:"stars"`       // 星级（与档位相同）
	Description string `json:"description"` // 评级描述
}

// 评级名称常量
const (
	RatingLegend   = "Fraud Prevention Legend"
	RatingGuardian = "Vigilant Guardian"
	RatingDefender = "Aware Defender"
	RatingLearner  = "Learning Responder"
	RatingNeedsDev = "Needs Development"
)

// Rate 根据最终得分计算评级
// 分段为左闭右开区间，负分落入最低档。
func Rate(score int) PerformanceRating {
	switch {
	case score >= 150:
		return PerformanceRating{
			Label:       RatingLegend,
			Tier:        5,
			Stars:       5,
			Description: "Outstanding! You demonstrated exceptional fraud prevention leadership!",
		}
	case score >= 100:
		return PerformanceRating{
			Label:       RatingGuardian,
			Tier:        4,
			Stars:       4,
			Description: "Excellent work! You're a strong fraud prevention champion!",
		}
	case score >= 50:
		return PerformanceRating{
			Label:       RatingDefender,
			Tier:        3,
			Stars:       3,
			Description: "Good job! You understand fraud prevention fundamentals!",
		}
	case score >= 20:
		return PerformanceRating{
			Label:       RatingLearner,
			Tier:        2,
			Stars:       2,
			Description: "You're learning! Review fraud prevention best practices!",
		}
	default:
		return PerformanceRating{
			Label:       RatingNeedsDev,
			Tier:        1,
			Stars:       1,
			Description: "Fraud prevention requires vigilance. Keep training!",
		}
	}
}
