package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/fraud-game/internal/leaderboard"
	"github.com/wfunc/fraud-game/internal/service"
)

// LeaderboardHandler 排行榜接口处理器
type LeaderboardHandler struct {
	svc *service.GameService
}

// NewLeaderboardHandler 创建排行榜接口处理器
func NewLeaderboardHandler(svc *service.GameService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

// Query 查询排行榜
// GET /api/v1/leaderboard?department=all&sort=points
func (h *LeaderboardHandler) Query(c *gin.Context) {
	department := c.DefaultQuery("department", leaderboard.FilterAll)
	criterion := leaderboard.ParseSortCriterion(c.DefaultQuery("sort", string(leaderboard.SortByPoints)))

	results, summary, err := h.svc.Leaderboard(c.Request.Context(), department, criterion)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: LeaderboardResponse{
		Results: results,
		Summary: summary,
	}})
}
