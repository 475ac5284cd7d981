package game

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/models"
	"github.com/wfunc/fraud-game/internal/storage"
)

func completedSession(t *testing.T) *Session {
	t.Helper()

	graph := mustDefaultGraph(t)
	s := NewSession()
	start := time.Now().Add(-90 * time.Second)
	require.NoError(t, s.Start("Fraud Busters", "Finance", []string{"Ada", "Bob"}, start))
	for s.State == StatePlaying {
		_, err := s.ApplyChoice(graph, 0, start.Add(90*time.Second))
		require.NoError(t, err)
	}
	return s
}

func TestRecorderSave(t *testing.T) {
	store := storage.NewMemoryStore()
	recorder := NewRecorder(store, "game:")
	s := completedSession(t)

	key, err := recorder.Save(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	// 键格式: game:<毫秒时间戳>:<队伍名-空白替换为连字符>
	assert.True(t, strings.HasPrefix(key, "game:"))
	assert.True(t, strings.HasSuffix(key, ":Fraud-Busters"))

	value, err := store.Get(context.Background(), key, true)
	require.NoError(t, err)

	var result models.MatchResult
	require.NoError(t, json.Unmarshal([]byte(value), &result))
	assert.Equal(t, "Fraud Busters", result.TeamName)
	assert.Equal(t, "Finance", result.Department)
	assert.Equal(t, s.Score, result.Points)
	assert.Equal(t, s.Elapsed, result.CompletionTime)
	assert.Equal(t, Rate(s.Score).Label, result.Rating)
	assert.Equal(t, len(s.Decisions), result.Decisions)

	_, err = time.Parse(time.RFC3339, result.Timestamp)
	assert.NoError(t, err, "时间戳应为RFC3339格式")
}

func TestRecorderSaveRejectsIncomplete(t *testing.T) {
	store := storage.NewMemoryStore()
	recorder := NewRecorder(store, "game:")

	s := NewSession()
	require.NoError(t, s.Start("Team Alpha", "IT", []string{"Ada", "Bob"}, time.Now()))

	_, err := recorder.Save(context.Background(), s)
	assert.True(t, apperrors.Is(err, apperrors.ErrSessionState))
	assert.Equal(t, 0, store.Len())
}

func TestRecorderSaveWriteFailure(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailSet = errors.New("disk full")
	recorder := NewRecorder(store, "game:")
	s := completedSession(t)

	_, err := recorder.Save(context.Background(), s)
	assert.True(t, apperrors.Is(err, apperrors.ErrResultSave))

	// 写失败不破坏会话，可重试
	assert.Equal(t, StateComplete, s.State)
	store.FailSet = nil
	_, err = recorder.Save(context.Background(), s)
	assert.NoError(t, err)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{3600, "60:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%d", tt.seconds)
	}
}
