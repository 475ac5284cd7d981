package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/fraud-game/internal/errors"
	"github.com/wfunc/fraud-game/internal/game"
	"github.com/wfunc/fraud-game/internal/service"
)

// GameHandler 游戏接口处理器
type GameHandler struct {
	svc *service.GameService
}

// NewGameHandler 创建游戏接口处理器
func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{svc: svc}
}

// respondError 统一错误响应
func respondError(c *gin.Context, err error) {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrUnknown)
	}
	c.JSON(appErr.HTTPStatus(), apperrors.NewErrorResponse(appErr, c.GetString("request_id")))
}

// CreateSession 创建会话
// POST /api/v1/game/sessions
func (h *GameHandler) CreateSession(c *gin.Context) {
	id, err := h.svc.CreateSession()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: SessionResponse{SessionID: id}})
}

// Start 启动游戏
// POST /api/v1/game/sessions/:id/start
func (h *GameHandler) Start(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.ErrInvalidParam))
		return
	}

	if err := h.svc.Start(c.Param("id"), req.TeamName, req.Department, req.TeamMembers); err != nil {
		respondError(c, err)
		return
	}

	h.scene(c)
}

// Scene 获取当前场景
// GET /api/v1/game/sessions/:id/scene
func (h *GameHandler) Scene(c *gin.Context) {
	h.scene(c)
}

func (h *GameHandler) scene(c *gin.Context) {
	node, snap, err := h.svc.Scene(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: SceneResponse{
		Scene:   node,
		Session: NewSessionView(snap),
	}})
}

// Choose 应用选择
// POST /api/v1/game/sessions/:id/choices
func (h *GameHandler) Choose(c *gin.Context) {
	var req ChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.Wrap(err, apperrors.ErrInvalidParam))
		return
	}

	choice, snap, err := h.svc.Choose(c.Param("id"), *req.Choice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: ChoiceResponse{
		Feedback: choice.Feedback,
		Points:   choice.Points,
		Session:  NewSessionView(snap),
	}})
}

// SaveResult 保存比赛结果
// POST /api/v1/game/sessions/:id/result
func (h *GameHandler) SaveResult(c *gin.Context) {
	key, err := h.svc.SaveResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: SaveResultResponse{
		Key:    key,
		Status: string(game.SaveSaved),
	}})
}

// Reset 重置会话（再玩一局）
// POST /api/v1/game/sessions/:id/reset
func (h *GameHandler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Departments 返回部门列表
// GET /api/v1/departments
func (h *GameHandler) Departments(c *gin.Context) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: game.Departments})
}
