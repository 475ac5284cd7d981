package leaderboard

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/models"
	"github.com/wfunc/fraud-game/internal/storage"
	"go.uber.org/zap"
)

// SortCriterion 排行榜排序方式
type SortCriterion string

const (
	SortByPoints SortCriterion = "points" // 按得分降序
	SortByTime   SortCriterion = "time"   // 按用时升序
	SortByDate   SortCriterion = "date"   // 按时间戳降序（最新在前）
)

// FilterAll 部门过滤的通配值
const FilterAll = "all"

// ParseSortCriterion 解析排序方式，无法识别时回退为按得分
func ParseSortCriterion(s string) SortCriterion {
	switch SortCriterion(s) {
	case SortByPoints, SortByTime, SortByDate:
		return SortCriterion(s)
	default:
		return SortByPoints
	}
}

// Summary 排行榜汇总信息
type Summary struct {
	Count    int `json:"count"`    // 结果总数
	MaxScore int `json:"maxScore"` // 最高得分
	MinTime  int `json:"minTime"`  // 最短用时（秒）
}

// Aggregator 排行榜聚合器
// 每次查询都从存储重新加载全部结果，不做缓存。
type Aggregator struct {
	store     storage.Store
	namespace string
	log       *zap.Logger
}

// NewAggregator 创建排行榜聚合器
func NewAggregator(store storage.Store, namespace string) *Aggregator {
	return &Aggregator{
		store:     store,
		namespace: namespace,
		log:       logger.GetModuleLogger("leaderboard"),
	}
}

// Load 从存储加载全部比赛结果
// 单条记录读取失败或解析失败时记日志并跳过，不影响其他记录。
func (a *Aggregator) Load(ctx context.Context) ([]*models.MatchResult, error) {
	keys, err := a.store.List(ctx, a.namespace, true)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrStorageList)
	}

	results := make([]*models.MatchResult, 0, len(keys))
	for _, key := range keys {
		value, err := a.store.Get(ctx, key, true)
		if err != nil {
			a.log.Warn("结果读取失败，已跳过",
				zap.String("key", key), zap.Error(err))
			continue
		}

		var result models.MatchResult
		if err := json.Unmarshal([]byte(value), &result); err != nil {
			a.log.Warn("结果记录损坏，已跳过",
				zap.String("key", key),
				zap.Error(apperrors.Wrap(err, apperrors.ErrRecordCorrupt)))
			continue
		}
		results = append(results, &result)
	}
	return results, nil
}

// Filter 按部门过滤结果
// department为"all"或空时返回原切片。
func Filter(results []*models.MatchResult, department string) []*models.MatchResult {
	if department == "" || department == FilterAll {
		return results
	}

	filtered := make([]*models.MatchResult, 0, len(results))
	for _, r := range results {
		if r.Department == department {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Sort 按指定方式稳定排序（原地）
// 相等元素保持加载顺序，重复排序结果不变。
func Sort(results []*models.MatchResult, criterion SortCriterion) {
	switch criterion {
	case SortByTime:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].CompletionTime < results[j].CompletionTime
		})
	case SortByDate:
		sort.SliceStable(results, func(i, j int) bool {
			return parseTimestamp(results[i].Timestamp).After(parseTimestamp(results[j].Timestamp))
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Points > results[j].Points
		})
	}
}

// parseTimestamp 解析RFC3339时间戳，失败时返回零值（排在最后）
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Summarize 对全部结果计算汇总信息
// 输入为空时返回零值Summary。
func Summarize(results []*models.MatchResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	summary := Summary{
		Count:    len(results),
		MaxScore: results[0].Points,
		MinTime:  results[0].CompletionTime,
	}
	for _, r := range results[1:] {
		if r.Points > summary.MaxScore {
			summary.MaxScore = r.Points
		}
		if r.CompletionTime < summary.MinTime {
			summary.MinTime = r.CompletionTime
		}
	}
	return summary
}

// Top 返回前n条结果（不足n条时全部返回）
func Top(results []*models.MatchResult, n int) []*models.MatchResult {
	if n < 0 {
		n = 0
	}
	if len(results) <= n {
		return results
	}
	return results[:n]
}

// Query 一次完成加载、过滤、排序和汇总
// 汇总覆盖加载到的全部结果，不受部门过滤影响；过滤和排序只作用于列表。
func (a *Aggregator) Query(ctx context.Context, department string, criterion SortCriterion) ([]*models.MatchResult, Summary, error) {
	results, err := a.Load(ctx)
	if err != nil {
		return nil, Summary{}, err
	}

	summary := Summarize(results)
	results = Filter(results, department)
	Sort(results, criterion)
	return results, summary, nil
}
