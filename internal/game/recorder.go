package game

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/models"
	"github.com/wfunc/fraud-game/internal/storage"
	"go.uber.org/zap"
)

// SaveStatus 保存状态
type SaveStatus string

const (
	SaveIdle   SaveStatus = "idle"   // 尚未保存
	SaveSaving SaveStatus = "saving" // 保存中
	SaveSaved  SaveStatus = "saved"  // 保存成功
	SaveError  SaveStatus = "error"  // 保存失败
)

// 键中的空白统一替换为连字符
var whitespacePattern = regexp.MustCompile(`\s`)

// Recorder 比赛结果记录器
// 将完成的会话序列化为JSON写入键值存储。
type Recorder struct {
	store     storage.Store
	namespace string
	log       *zap.Logger
}

// NewRecorder 创建结果记录器
func NewRecorder(store storage.Store, namespace string) *Recorder {
	return &Recorder{
		store:     store,
		namespace: namespace,
		log:       logger.GetModuleLogger("recorder"),
	}
}

// ResultKey 生成结果存储键
// 格式：<namespace><毫秒时间戳>:<队伍名（空白替换为-）>
func (r *Recorder) ResultKey(teamName string, at time.Time) string {
	slug := whitespacePattern.ReplaceAllString(teamName, "-")
	return fmt.Sprintf("%s%d:%s", r.namespace, at.UnixMilli(), slug)
}

// BuildResult 从已完成的会话构造比赛结果
func BuildResult(s *Session, at time.Time) *models.MatchResult {
	rating := Rate(s.Score)
	return &models.MatchResult{
		TeamName:       s.TeamName,
		Department:     s.Department,
		TeamMembers:    append([]string(nil), s.TeamMembers...),
		Points:         s.Score,
		CompletionTime: s.Elapsed,
		Rating:         rating.Label,
		Decisions:      len(s.Decisions),
		Timestamp:      at.Format(time.RFC3339),
		Date:           at.Format("2006-01-02"),
	}
}

// Save 保存会话结果，返回存储键
// 会话未完成时拒绝；写失败时不修改会话，调用方可重试。
func (r *Recorder) Save(ctx context.Context, s *Session) (string, error) {
	if s.State != StateComplete {
		return "", apperrors.Newf(apperrors.ErrSessionState, "当前状态: %s", s.State)
	}

	now := time.Now()
	result := BuildResult(s, now)

	data, err := json.Marshal(result)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrResultSave)
	}

	key := r.ResultKey(s.TeamName, now)
	start := time.Now()
	err = r.store.Set(ctx, key, string(data), true)
	logger.LogStorageOperation("set", key, time.Since(start), err)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrResultSave)
	}

	r.log.Info("比赛结果已保存",
		zap.String("key", key),
		zap.String("team", s.TeamName),
		zap.Int("points", s.Score),
		zap.Int("completion_time", s.Elapsed))
	return key, nil
}

// FormatDuration 把秒数格式化为 m:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
