package models

// MatchResult 一局完成后的持久化比赛结果
// JSON字段名与前端存储格式保持一致，写入后不再修改。
type MatchResult struct {
	TeamName       string   `json:"teamName"`
	Department     string   `json:"department"`
	TeamMembers    []string `json:"teamMembers"`
	Points         int      `json:"points"`
	CompletionTime int      `json:"completionTime"` // 完成用时（秒）
	Rating         string   `json:"rating"`         // 评级标签
	Decisions      int      `json:"decisions"`      // 决策次数
	Timestamp      string   `json:"timestamp"`      // RFC3339时间戳
	Date           string   `json:"date"`           // 展示用日期
}
