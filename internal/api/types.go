package api

import (
	"github.com/wfunc/fraud-game/internal/game"
	"github.com/wfunc/fraud-game/internal/leaderboard"
	"github.com/wfunc/fraud-game/internal/models"
)

// StartGameRequest 启动游戏请求
type StartGameRequest struct {
	TeamName    string   `json:"teamName" binding:"required"`
	Department  string   `json:"department" binding:"required"`
	TeamMembers []string `json:"teamMembers" binding:"required"`
}

// ChoiceRequest 选择请求
type ChoiceRequest struct {
	Choice *int `json:"choice" binding:"required"`
}

// SessionResponse 创建会话响应
type SessionResponse struct {
	SessionID string `json:"sessionId"`
}

// SceneResponse 场景响应
type SceneResponse struct {
	Scene   *game.ScenarioNode `json:"scene"`
	Session SessionView        `json:"session"`
}

// ChoiceResponse 选择响应
type ChoiceResponse struct {
	Feedback string      `json:"feedback"`
	Points   int         `json:"points"`
	Session  SessionView `json:"session"`
}

// SessionView 对外暴露的会话状态
type SessionView struct {
	TeamName    string                 `json:"teamName"`
	Department  string                 `json:"department"`
	TeamMembers []string               `json:"teamMembers"`
	State       string                 `json:"state"`
	Scene       int                    `json:"scene"`
	Score       int                    `json:"score"`
	Path        string                 `json:"path"`
	Decisions   int                    `json:"decisions"`
	Elapsed     string                 `json:"elapsed"` // m:ss格式
	SaveStatus  string                 `json:"saveStatus"`
	Rating      game.PerformanceRating `json:"rating"`
}

// NewSessionView 从会话快照构造视图
func NewSessionView(s game.Session) SessionView {
	return SessionView{
		TeamName:    s.TeamName,
		Department:  s.Department,
		TeamMembers: s.TeamMembers,
		State:       string(s.State),
		Scene:       s.Scene,
		Score:       s.Score,
		Path:        string(s.Path),
		Decisions:   len(s.Decisions),
		Elapsed:     game.FormatDuration(s.Elapsed),
		SaveStatus:  string(s.SaveStatus),
		Rating:      s.Rating(),
	}
}

// SaveResultResponse 结果保存响应
type SaveResultResponse struct {
	Key    string `json:"key"`
	Status string `json:"status"`
}

// LeaderboardResponse 排行榜响应
type LeaderboardResponse struct {
	Results []*models.MatchResult `json:"results"`
	Summary leaderboard.Summary   `json:"summary"`
}

// SuccessResponse 通用成功响应
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}
