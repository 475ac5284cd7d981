package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/fraud-game/internal/models"
	"github.com/wfunc/fraud-game/internal/storage"
)

func seedResult(t *testing.T, store *storage.MemoryStore, key string, r *models.MatchResult) {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), key, string(data), true))
}

func sampleResults(t *testing.T, store *storage.MemoryStore) {
	t.Helper()
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	results := []*models.MatchResult{
		{TeamName: "Alpha", Department: "IT", Points: 120, CompletionTime: 300,
			Rating: "Vigilant Guardian", Decisions: 4,
			Timestamp: base.Format(time.RFC3339), Date: "2026-08-24"},
		{TeamName: "Beta", Department: "Finance", Points: 160, CompletionTime: 420,
			Rating: "Fraud Prevention Legend", Decisions: 4,
			Timestamp: base.Add(time.Hour).Format(time.RFC3339), Date: "2026-08-24"},
		{TeamName: "Gamma", Department: "IT", Points: 120, CompletionTime: 200,
			Rating: "Vigilant Guardian", Decisions: 4,
			Timestamp: base.Add(2 * time.Hour).Format(time.RFC3339), Date: "2026-08-24"},
	}
	for i, r := range results {
		seedResult(t, store, fmt.Sprintf("game:%d:%s", i, r.TeamName), r)
	}
}

func TestAggregatorLoadSkipsCorrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	sampleResults(t, store)

	// 损坏的记录混在中间
	require.NoError(t, store.Set(context.Background(), "game:0.5:broken", "{not json", true))

	agg := NewAggregator(store, "game:")
	results, err := agg.Load(context.Background())
	require.NoError(t, err)

	// 3条有效记录，损坏记录被跳过且顺序保留
	require.Len(t, results, 3)
	assert.Equal(t, "Alpha", results[0].TeamName)
	assert.Equal(t, "Beta", results[1].TeamName)
	assert.Equal(t, "Gamma", results[2].TeamName)
}

func TestAggregatorLoadIgnoresOtherNamespaces(t *testing.T) {
	store := storage.NewMemoryStore()
	sampleResults(t, store)
	require.NoError(t, store.Set(context.Background(), "other:1:x", `{"teamName":"X"}`, true))

	agg := NewAggregator(store, "game:")
	results, err := agg.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestFilterByDepartment(t *testing.T) {
	results := []*models.MatchResult{
		{TeamName: "Alpha", Department: "IT"},
		{TeamName: "Beta", Department: "Finance"},
		{TeamName: "Gamma", Department: "IT"},
	}

	filtered := Filter(results, "IT")
	require.Len(t, filtered, 2)
	assert.Equal(t, "Alpha", filtered[0].TeamName)
	assert.Equal(t, "Gamma", filtered[1].TeamName)

	assert.Len(t, Filter(results, FilterAll), 3)
	assert.Len(t, Filter(results, ""), 3)
	assert.Empty(t, Filter(results, "Legal"))
}

func TestSortStableAndIdempotent(t *testing.T) {
	base := time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC)
	results := []*models.MatchResult{
		{TeamName: "Alpha", Points: 120, CompletionTime: 300, Timestamp: base.Format(time.RFC3339)},
		{TeamName: "Beta", Points: 160, CompletionTime: 420, Timestamp: base.Add(time.Hour).Format(time.RFC3339)},
		{TeamName: "Gamma", Points: 120, CompletionTime: 200, Timestamp: base.Add(2 * time.Hour).Format(time.RFC3339)},
	}

	// 按得分降序，同分保持加载顺序
	Sort(results, SortByPoints)
	assert.Equal(t, "Beta", results[0].TeamName)
	assert.Equal(t, "Alpha", results[1].TeamName)
	assert.Equal(t, "Gamma", results[2].TeamName)

	// 重复排序结果不变
	Sort(results, SortByPoints)
	assert.Equal(t, "Beta", results[0].TeamName)
	assert.Equal(t, "Alpha", results[1].TeamName)
	assert.Equal(t, "Gamma", results[2].TeamName)

	// 按用时升序
	Sort(results, SortByTime)
	assert.Equal(t, "Gamma", results[0].TeamName)
	assert.Equal(t, "Alpha", results[1].TeamName)
	assert.Equal(t, "Beta", results[2].TeamName)

	// 按时间戳降序（最新在前）
	Sort(results, SortByDate)
	assert.Equal(t, "Gamma", results[0].TeamName)
	assert.Equal(t, "Beta", results[1].TeamName)
	assert.Equal(t, "Alpha", results[2].TeamName)
}

func TestParseSortCriterion(t *testing.T) {
	assert.Equal(t, SortByPoints, ParseSortCriterion("points"))
	assert.Equal(t, SortByTime, ParseSortCriterion("time"))
	assert.Equal(t, SortByDate, ParseSortCriterion("date"))
	assert.Equal(t, SortByPoints, ParseSortCriterion("bogus"))
	assert.Equal(t, SortByPoints, ParseSortCriterion(""))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))

	results := []*models.MatchResult{
		{Points: 120, CompletionTime: 300},
		{Points: 160, CompletionTime: 420},
		{Points: 80, CompletionTime: 200},
	}
	summary := Summarize(results)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 160, summary.MaxScore)
	assert.Equal(t, 200, summary.MinTime)
}

func TestTop(t *testing.T) {
	results := []*models.MatchResult{
		{TeamName: "A"}, {TeamName: "B"}, {TeamName: "C"},
	}
	assert.Len(t, Top(results, 2), 2)
	assert.Len(t, Top(results, 10), 3)
	assert.Empty(t, Top(results, 0))
}

func TestAggregatorQuery(t *testing.T) {
	store := storage.NewMemoryStore()
	sampleResults(t, store)

	agg := NewAggregator(store, "game:")
	results, summary, err := agg.Query(context.Background(), "IT", SortByTime)
	require.NoError(t, err)

	// 列表只含IT部门并按用时升序
	require.Len(t, results, 2)
	assert.Equal(t, "Gamma", results[0].TeamName)
	assert.Equal(t, "Alpha", results[1].TeamName)

	// 汇总覆盖全部结果：最高分160属于Finance队伍，不因过滤IT而消失
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 160, summary.MaxScore)
	assert.Equal(t, 200, summary.MinTime)
}
