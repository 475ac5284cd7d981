package game

import (
	"strings"
	"time"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

// SessionState 会话状态
type SessionState string

const (
	StateSetup    SessionState = "setup"    // 填写队伍信息
	StatePlaying  SessionState = "playing"  // 游戏进行中
	StateComplete SessionState = "complete" // 已到达终结节点
)

// 队伍规模限制
const (
	MinTeamMembers = 2
	MaxTeamMembers = 4
)

// Decision 单次决策记录
// 记录选项文本，决策轨迹脱离剧情图也能自解释。
type Decision struct {
	Scene    int     `json:"scene"`    // 决策发生的场景ID
	Choice   int     `json:"choice"`   // 选项下标
	Text     string  `json:"text"`     // 选项文本
	Points   int     `json:"points"`   // 该选项的分数增量
	Feedback string  `json:"feedback"` // 反馈文本
	Path     PathTag `json:"path"`     // 选项的路径标签
}

// Session 一局游戏的会话状态
// 本身不做并发保护，由上层的Machine串行化访问。
type Session struct {
	TeamName    string       `json:"teamName"`
	Department  string       `json:"department"`
	TeamMembers []string     `json:"teamMembers"`
	State       SessionState `json:"state"`
	Scene       int          `json:"scene"`      // 当前场景ID
	Score       int          `json:"score"`      // 累计得分
	Path        PathTag      `json:"path"`       // 最近一次非空路径标签
	Decisions   []Decision   `json:"decisions"`  // 决策轨迹
	StartedAt   time.Time    `json:"startedAt"`  // 进入playing的时刻
	Elapsed     int          `json:"elapsed"`    // 完成用时（秒），终局时冻结
	SaveStatus  SaveStatus   `json:"saveStatus"` // 结果保存状态
}

// NewSession 创建处于setup状态的空会话
func NewSession() *Session {
	return &Session{
		State:      StateSetup,
		Scene:      EntrySceneID,
		Path:       PathMain,
		SaveStatus: SaveIdle,
	}
}

// Start 校验队伍信息并进入playing状态
// 成员名单只统计非空白项，超出上限或不足下限均拒绝。
func (s *Session) Start(teamName, department string, members []string, now time.Time) error {
	if s.State != StateSetup {
		return apperrors.Newf(apperrors.ErrSessionState, "当前状态: %s", s.State)
	}

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return apperrors.New(apperrors.ErrTeamNameRequired)
	}
	if !IsValidDepartment(department) {
		return apperrors.Newf(apperrors.ErrDepartmentInvalid, "部门: %s", department)
	}

	var valid []string
	for _, m := range members {
		m = strings.TrimSpace(m)
		if m != "" {
			valid = append(valid, m)
		}
	}
	if len(valid) < MinTeamMembers || len(valid) > MaxTeamMembers {
		return apperrors.Newf(apperrors.ErrTeamTooSmall,
			"有效成员数%d，要求%d-%d", len(valid), MinTeamMembers, MaxTeamMembers)
	}

	s.TeamName = teamName
	s.Department = department
	s.TeamMembers = valid
	s.State = StatePlaying
	s.Scene = EntrySceneID
	s.Score = 0
	s.Path = PathMain
	s.Decisions = nil
	s.StartedAt = now
	s.Elapsed = 0
	return nil
}

// ApplyChoice 在当前场景应用一个选项
// 记录决策、累计分数、推进场景；到达终结节点时转为complete并冻结用时。
// 整个变更是原子的：校验失败时会话状态不变。
func (s *Session) ApplyChoice(graph *Graph, choiceIndex int, now time.Time) (*Choice, error) {
	if s.State != StatePlaying {
		if s.State == StateComplete {
			return nil, apperrors.New(apperrors.ErrGameAlreadyEnded)
		}
		return nil, apperrors.New(apperrors.ErrGameNotStarted)
	}

	node, err := graph.Node(s.Scene)
	if err != nil {
		return nil, err
	}
	if choiceIndex < 0 || choiceIndex >= len(node.Choices) {
		return nil, apperrors.Newf(apperrors.ErrChoiceNotInScene,
			"场景%d共%d个选项，收到下标%d", s.Scene, len(node.Choices), choiceIndex)
	}

	choice := &node.Choices[choiceIndex]

	s.Decisions = append(s.Decisions, Decision{
		Scene:    s.Scene,
		Choice:   choiceIndex,
		Text:     choice.Text,
		Points:   choice.Points,
		Feedback: choice.Feedback,
		Path:     choice.Path,
	})
	s.Score += choice.Points
	if choice.Path != "" {
		s.Path = choice.Path
	}
	s.Scene = choice.NextScene

	if graph.IsTerminal(s.Scene) {
		s.State = StateComplete
		// 用时在最后一次选择时冻结，向下取整到秒
		s.Elapsed = int(now.Sub(s.StartedAt).Seconds())
		if s.Elapsed < 0 {
			s.Elapsed = 0
		}
	}
	return choice, nil
}

// Rating 返回当前得分对应的评级
func (s *Session) Rating() PerformanceRating {
	return Rate(s.Score)
}

// Reset 将会话重置回setup状态，清空所有进度
func (s *Session) Reset() {
	s.TeamName = ""
	s.Department = ""
	s.TeamMembers = nil
	s.State = StateSetup
	s.Scene = EntrySceneID
	s.Score = 0
	s.Path = PathMain
	s.Decisions = nil
	s.StartedAt = time.Time{}
	s.Elapsed = 0
	s.SaveStatus = SaveIdle
}
