package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/game"
	"github.com/wfunc/fraud-game/internal/leaderboard"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/models"
	"github.com/wfunc/fraud-game/internal/storage"
	"go.uber.org/zap"
)

// GameService 游戏业务服务
// 管理所有活跃会话，封装剧情推进、结果保存和排行榜查询。
type GameService struct {
	mu       sync.RWMutex
	sessions map[string]*game.Machine

	graph       *game.Graph
	recorder    *game.Recorder
	aggregator  *leaderboard.Aggregator
	revealDelay time.Duration
	maxSessions int

	// onResultSaved 结果保存成功后回调（广播用），可为nil
	onResultSaved func(*models.MatchResult)

	log *zap.Logger
}

// NewGameService 创建游戏服务
func NewGameService(graph *game.Graph, store storage.Store, namespace string, revealDelay time.Duration, maxSessions int) *GameService {
	return &GameService{
		sessions:    make(map[string]*game.Machine),
		graph:       graph,
		recorder:    game.NewRecorder(store, namespace),
		aggregator:  leaderboard.NewAggregator(store, namespace),
		revealDelay: revealDelay,
		maxSessions: maxSessions,
		log:         logger.GetModuleLogger("service"),
	}
}

// SetOnResultSaved 设置结果保存回调
func (s *GameService) SetOnResultSaved(fn func(*models.MatchResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onResultSaved = fn
}

// CreateSession 创建新会话，返回会话ID
func (s *GameService) CreateSession() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.sessions) >= s.maxSessions {
		return "", apperrors.Newf(apperrors.ErrSessionLimit, "上限: %d", s.maxSessions)
	}

	id := uuid.New().String()
	s.sessions[id] = game.NewMachine(s.graph, s.revealDelay)

	logger.LogGameEvent("session_created", id, nil)
	return id, nil
}

// machine 根据ID查找会话
func (s *GameService) machine(sessionID string) (*game.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.Newf(apperrors.ErrSessionNotFound, "会话ID: %s", sessionID)
	}
	return m, nil
}

// Start 启动指定会话的游戏
func (s *GameService) Start(sessionID, teamName, department string, members []string) error {
	m, err := s.machine(sessionID)
	if err != nil {
		return err
	}

	if err := m.Start(teamName, department, members); err != nil {
		return err
	}

	logger.LogGameEvent("game_started", sessionID, map[string]interface{}{
		"team":       teamName,
		"department": department,
		"members":    len(members),
	})
	return nil
}

// Scene 返回会话的当前场景和状态快照
func (s *GameService) Scene(sessionID string) (*game.ScenarioNode, game.Session, error) {
	m, err := s.machine(sessionID)
	if err != nil {
		return nil, game.Session{}, err
	}

	node, err := m.Scene()
	if err != nil {
		return nil, game.Session{}, err
	}
	return node, m.Snapshot(), nil
}

// Choose 应用当前场景的一个选项
func (s *GameService) Choose(sessionID string, choiceIndex int) (*game.Choice, game.Session, error) {
	m, err := s.machine(sessionID)
	if err != nil {
		return nil, game.Session{}, err
	}

	choice, err := m.Choose(choiceIndex)
	if err != nil {
		return nil, game.Session{}, err
	}

	snap := m.Snapshot()
	logger.LogGameEvent("choice_applied", sessionID, map[string]interface{}{
		"scene":  snap.Scene,
		"points": choice.Points,
		"score":  snap.Score,
		"state":  string(snap.State),
	})
	return choice, snap, nil
}

// SaveResult 保存已完成会话的比赛结果
// 保存状态随流程流转：saving → saved / error，失败后可重试。
func (s *GameService) SaveResult(ctx context.Context, sessionID string) (string, error) {
	m, err := s.machine(sessionID)
	if err != nil {
		return "", err
	}

	m.SetSaveStatus(game.SaveSaving)
	snap := m.Snapshot()
	key, err := s.recorder.Save(ctx, &snap)
	if err != nil {
		// 会话未完成的拒绝回到idle，真正的写失败标记为error
		if apperrors.Is(err, apperrors.ErrSessionState) {
			m.SetSaveStatus(game.SaveIdle)
		} else {
			m.SetSaveStatus(game.SaveError)
		}
		return "", err
	}
	m.SetSaveStatus(game.SaveSaved)

	s.mu.RLock()
	fn := s.onResultSaved
	s.mu.RUnlock()
	if fn != nil {
		fn(game.BuildResult(&snap, time.Now()))
	}

	logger.LogGameEvent("result_saved", sessionID, map[string]interface{}{
		"key":    key,
		"points": snap.Score,
	})
	return key, nil
}

// Reset 重置会话（再玩一局）
func (s *GameService) Reset(sessionID string) error {
	m, err := s.machine(sessionID)
	if err != nil {
		return err
	}

	m.Reset()
	logger.LogGameEvent("session_reset", sessionID, nil)
	return nil
}

// Leaderboard 查询排行榜
func (s *GameService) Leaderboard(ctx context.Context, department string, criterion leaderboard.SortCriterion) ([]*models.MatchResult, leaderboard.Summary, error) {
	return s.aggregator.Query(ctx, department, criterion)
}

// SessionCount 返回当前活跃会话数
func (s *GameService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CleanupIdle 清理闲置超时的会话，返回清理数量
func (s *GameService) CleanupIdle(timeout time.Duration) int {
	if timeout <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-timeout)
	removed := 0
	for id, m := range s.sessions {
		if m.LastActivity().Before(cutoff) {
			m.Reset()
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("已清理闲置会话",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.sessions)))
	}
	return removed
}
