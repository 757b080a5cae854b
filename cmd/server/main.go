package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "community_api/internal/domain/common"
	_ "community_api/internal/domain/feed"
	"community_api/internal/pkg/config"
	"community_api/internal/pkg/middleware"
	"community_api/internal/pkg/registry"
	"community_api/internal/pkg/uploader"
	"community_api/pkg/database"
	"community_api/pkg/logger"
	"community_api/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// @title Community API
// @version 1.0
// @description Community feed: posts, comments, likes and image uploads.
// @BasePath /
func main() {
	// 1. 配置
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// 2. 日志
	log, err := logger.Init(cfg.Server.Mode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// 3. 数据库
	db, err := database.InitDatabase(cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect database", zap.Error(err))
	}

	// 4. 媒体服务
	up, err := uploader.New(cfg.OSS)
	if err != nil {
		log.Fatal("Failed to init uploader", zap.Error(err))
	}
	if _, disabled := up.(uploader.Disabled); disabled {
		log.Warn("OSS is not configured, image uploads will fail")
	}

	// 5. 路由与中间件
	gin.SetMode(cfg.Server.Mode)
	m := metrics.NewMetricsCollector(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	limiter.StartCleanup(ctx, time.Minute, 10*time.Minute)

	r := gin.New()
	r.Use(
		middleware.RecoveryMiddleware(log, cfg.IsDevelopment()),
		middleware.TraceMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.MetricsMiddleware(m),
		middleware.CORSMiddleware(cfg.CORS),
		middleware.RateLimitMiddleware(limiter),
	)

	// 6. 模块初始化
	if err := registry.InitModules(&registry.ModuleContext{
		Config:   cfg,
		DB:       db,
		Logger:   log,
		Metrics:  m,
		Uploader: up,
		Router:   r,
	}); err != nil {
		log.Fatal("Failed to init modules", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}
}
