package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wfunc/fraud-game/internal/api"
	"github.com/wfunc/fraud-game/internal/config"
	"github.com/wfunc/fraud-game/internal/database"
	"github.com/wfunc/fraud-game/internal/game"
	"github.com/wfunc/fraud-game/internal/logger"
	"github.com/wfunc/fraud-game/internal/service"
	"github.com/wfunc/fraud-game/internal/storage"
	"github.com/wfunc/fraud-game/internal/websocket"
	"go.uber.org/zap"
)

var (
	Version   = "1.0.0"
	BuildTime = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "配置文件路径")
		showVersion = flag.Bool("version", false, "显示版本信息")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("fraud-game %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// 初始化配置
	if err := config.Init(*configPath); err != nil {
		fmt.Printf("配置初始化失败: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// 初始化日志
	if err := logger.Init(&cfg.Log); err != nil {
		fmt.Printf("日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Cleanup()

	logger.Info("服务启动中",
		zap.String("version", Version),
		zap.String("mode", cfg.Server.Mode))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("数据库初始化失败", zap.Error(err))
	}
	defer database.Close()

	// 构建剧情图
	graph, err := game.NewDefaultGraph()
	if err != nil {
		logger.Fatal("剧情图构建失败", zap.Error(err))
	}
	logger.Info("剧情图已加载", zap.Int("scenes", graph.Size()))

	// 组装服务
	store := storage.NewGormStore(database.GetDB())
	svc := service.NewGameService(
		graph,
		store,
		cfg.Storage.Namespace,
		cfg.Game.RevealDelay,
		cfg.Game.MaxSessions,
	)

	hub := websocket.NewHub()
	svc.SetOnResultSaved(hub.BroadcastResultSaved)

	// 闲置会话清理
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go cleanupLoop(cleanupCtx, svc, cfg.Game.SessionTimeout)

	// 监听配置变化
	config.Watch(func(newCfg *config.Config) {
		logger.Info("配置已更新", zap.String("mode", newCfg.Server.Mode))
	})

	// 启动HTTP服务器
	router := api.NewRouter(cfg.Server.Mode, svc, hub)
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP服务器已启动", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("收到退出信号，开始优雅关闭")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP服务器关闭失败", zap.Error(err))
	}

	logger.Info("服务已退出")
}

// cleanupLoop 周期性清理闲置会话
func cleanupLoop(ctx context.Context, svc *service.GameService, timeout time.Duration) {
	if timeout <= 0 {
		return
	}

	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.CleanupIdle(timeout)
		}
	}
}
