package game

import (
	"testing"
	"time"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

func mustDefaultGraph(t *testing.T) *Graph {
	t.Helper()
	graph, err := NewDefaultGraph()
	if err != nil {
		t.Fatalf("默认剧情图构建失败: %v", err)
	}
	return graph
}

func TestSessionStartValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		teamName   string
		department string
		members    []string
		wantCode   apperrors.ErrorCode
	}{
		{
			name:       "有效的启动",
			teamName:   "Team Alpha",
			department: "IT",
			members:    []string{"Ada", "Bob"},
			wantCode:   0,
		},
		{
			name:       "队伍名为空白",
			teamName:   "   ",
			department: "IT",
			members:    []string{"Ada", "Bob"},
			wantCode:   apperrors.ErrTeamNameRequired,
		},
		{
			name:       "部门不在列表中",
			teamName:   "Team Alpha",
			department: "Unknown Dept",
			members:    []string{"Ada", "Bob"},
			wantCode:   apperrors.ErrDepartmentInvalid,
		},
		{
			name:       "成员不足",
			teamName:   "Team Alpha",
			department: "IT",
			members:    []string{"Ada"},
			wantCode:   apperrors.ErrTeamTooSmall,
		},
		{
			name:       "空白成员不计数",
			teamName:   "Team Alpha",
			department: "IT",
			members:    []string{"Ada", "  ", ""},
			wantCode:   apperrors.ErrTeamTooSmall,
		},
		{
			name:       "成员超过上限",
			teamName:   "Team Alpha",
			department: "IT",
			members:    []string{"A", "B", "C", "D", "E"},
			wantCode:   apperrors.ErrTeamTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			err := s.Start(tt.teamName, tt.department, tt.members, now)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("期望启动成功，得到错误: %v", err)
				}
				if s.State != StatePlaying {
					t.Errorf("状态 = %s，期望 %s", s.State, StatePlaying)
				}
				return
			}
			if !apperrors.Is(err, tt.wantCode) {
				t.Errorf("错误码 = %d，期望 %d (err: %v)", apperrors.GetCode(err), tt.wantCode, err)
			}
			if s.State != StateSetup {
				t.Errorf("校验失败后状态 = %s，应保持 %s", s.State, StateSetup)
			}
		})
	}
}

func TestSessionApplyChoiceAtomic(t *testing.T) {
	graph := mustDefaultGraph(t)
	now := time.Now()

	s := NewSession()
	if err := s.Start("Team Alpha", "Finance", []string{"Ada", "Bob"}, now); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	// 非法下标不改变任何状态
	_, err := s.ApplyChoice(graph, 99, now)
	if !apperrors.Is(err, apperrors.ErrChoiceNotInScene) {
		t.Errorf("错误码 = %d，期望 %d", apperrors.GetCode(err), apperrors.ErrChoiceNotInScene)
	}
	if s.Score != 0 || len(s.Decisions) != 0 || s.Scene != EntrySceneID {
		t.Errorf("非法选择后状态被修改: score=%d decisions=%d scene=%d", s.Score, len(s.Decisions), s.Scene)
	}

	// 未启动的会话拒绝选择
	fresh := NewSession()
	_, err = fresh.ApplyChoice(graph, 0, now)
	if !apperrors.Is(err, apperrors.ErrGameNotStarted) {
		t.Errorf("错误码 = %d，期望 %d", apperrors.GetCode(err), apperrors.ErrGameNotStarted)
	}
}

func TestSessionHeroPath(t *testing.T) {
	graph := mustDefaultGraph(t)
	start := time.Now()

	s := NewSession()
	if err := s.Start("Team Alpha", "IT", []string{"Ada", "Bob", "Cleo"}, start); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	// 每幕都选第一个选项: 0→1→3→7→11
	wantScenes := []int{1, 3, 7, 11}
	for i, want := range wantScenes {
		choice, err := s.ApplyChoice(graph, 0, start.Add(time.Duration(i+1)*30*time.Second))
		if err != nil {
			t.Fatalf("第%d次选择失败: %v", i+1, err)
		}
		if s.Scene != want {
			t.Fatalf("第%d次选择后场景 = %d，期望 %d", i+1, s.Scene, want)
		}
		if choice.Feedback == "" {
			t.Errorf("第%d次选择缺少反馈", i+1)
		}
		// 决策记录携带选项文本
		last := s.Decisions[len(s.Decisions)-1]
		if last.Text != choice.Text {
			t.Errorf("第%d条决策文本 = %q，期望 %q", i+1, last.Text, choice.Text)
		}
		if last.Text == "" {
			t.Errorf("第%d条决策缺少选项文本", i+1)
		}
	}

	if s.State != StateComplete {
		t.Errorf("状态 = %s，期望 %s", s.State, StateComplete)
	}
	if s.Score != 160 {
		t.Errorf("最终得分 = %d，期望 160", s.Score)
	}
	if len(s.Decisions) != 4 {
		t.Errorf("决策次数 = %d，期望 4", len(s.Decisions))
	}
	if s.Path != PathHero {
		t.Errorf("路径 = %s，期望 %s", s.Path, PathHero)
	}
	if s.Elapsed != 120 {
		t.Errorf("用时 = %d，期望 120", s.Elapsed)
	}

	rating := s.Rating()
	if rating.Tier != 5 || rating.Label != RatingLegend {
		t.Errorf("评级 = %+v，期望5档%s", rating, RatingLegend)
	}

	// 终局后拒绝继续选择
	_, err := s.ApplyChoice(graph, 0, start)
	if !apperrors.Is(err, apperrors.ErrGameAlreadyEnded) {
		t.Errorf("错误码 = %d，期望 %d", apperrors.GetCode(err), apperrors.ErrGameAlreadyEnded)
	}
}

func TestSessionReset(t *testing.T) {
	graph := mustDefaultGraph(t)
	now := time.Now()

	s := NewSession()
	if err := s.Start("Team Alpha", "Legal", []string{"Ada", "Bob"}, now); err != nil {
		t.Fatalf("启动失败: %v", err)
	}
	if _, err := s.ApplyChoice(graph, 1, now); err != nil {
		t.Fatalf("选择失败: %v", err)
	}

	s.Reset()

	if s.State != StateSetup || s.Scene != EntrySceneID || s.Score != 0 ||
		len(s.Decisions) != 0 || s.TeamName != "" || s.Path != PathMain {
		t.Errorf("重置后会话未回到初始状态: %+v", s)
	}
}

func TestMachineRevealGate(t *testing.T) {
	graph := mustDefaultGraph(t)

	m := NewMachine(graph, 50*time.Millisecond)
	if err := m.Start("Team Alpha", "HSE", []string{"Ada", "Bob"}); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	if _, err := m.Choose(0); err != nil {
		t.Fatalf("第一次选择失败: %v", err)
	}

	// 揭示期内拒绝新的选择
	_, err := m.Choose(0)
	if !apperrors.Is(err, apperrors.ErrChoicePending) {
		t.Errorf("错误码 = %d，期望 %d", apperrors.GetCode(err), apperrors.ErrChoicePending)
	}

	// 等待揭示期结束后可以继续
	time.Sleep(100 * time.Millisecond)
	if m.Pending() {
		t.Error("揭示期应已结束")
	}
	if _, err := m.Choose(0); err != nil {
		t.Errorf("揭示期后选择失败: %v", err)
	}
}

func TestMachineResetCancelsReveal(t *testing.T) {
	graph := mustDefaultGraph(t)

	m := NewMachine(graph, 50*time.Millisecond)
	if err := m.Start("Team Alpha", "HSE", []string{"Ada", "Bob"}); err != nil {
		t.Fatalf("启动失败: %v", err)
	}
	if _, err := m.Choose(0); err != nil {
		t.Fatalf("选择失败: %v", err)
	}

	m.Reset()

	if m.Pending() {
		t.Error("重置后不应处于揭示期")
	}

	// 旧定时器到期不影响重置后的新一局
	time.Sleep(100 * time.Millisecond)
	if err := m.Start("Team Beta", "IT", []string{"Dan", "Eve"}); err != nil {
		t.Fatalf("重置后启动失败: %v", err)
	}
	if _, err := m.Choose(0); err != nil {
		t.Errorf("重置后选择失败: %v", err)
	}
}

func TestMachineZeroDelayNoPending(t *testing.T) {
	graph := mustDefaultGraph(t)

	m := NewMachine(graph, 0)
	if err := m.Start("Team Alpha", "IT", []string{"Ada", "Bob"}); err != nil {
		t.Fatalf("启动失败: %v", err)
	}

	// 延迟为0时连续选择不被阻塞
	for i := 0; i < 4; i++ {
		if _, err := m.Choose(0); err != nil {
			t.Fatalf("第%d次选择失败: %v", i+1, err)
		}
	}

	snap := m.Snapshot()
	if snap.State != StateComplete {
		t.Errorf("状态 = %s，期望 %s", snap.State, StateComplete)
	}
}
