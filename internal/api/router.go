package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/service"
	"github.com/wfunc/fraud-game/internal/websocket"
)

// NewRouter 构建HTTP路由
func NewRouter(mode string, svc *service.GameService, hub *websocket.Hub) *gin.Engine {
	if mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	gameHandler := NewGameHandler(svc)
	leaderboardHandler := NewLeaderboardHandler(svc)

	v1 := r.Group("/api/v1")
	{
		sessions := v1.Group("/game/sessions")
		{
			sessions.POST("", gameHandler.CreateSession)
			sessions.POST("/:id/start", gameHandler.Start)
			sessions.GET("/:id/scene", gameHandler.Scene)
			sessions.POST("/:id/choices", gameHandler.Choose)
			sessions.POST("/:id/result", gameHandler.SaveResult)
			sessions.POST("/:id/reset", gameHandler.Reset)
		}

		v1.GET("/departments", gameHandler.Departments)
		v1.GET("/leaderboard", leaderboardHandler.Query)
		v1.GET("/ws", hub.HandleWS)
	}

	return r
}

// requestLogger 请求日志中间件
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.LogRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
