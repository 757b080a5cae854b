package common

import (
	_ "community_api/docs"
	commonHandler "community_api/internal/pkg/common"
	"community_api/internal/pkg/registry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CommonModule 通用功能模块
type CommonModule struct{}

func init() {
	registry.Register(&CommonModule{})
}

func (m *CommonModule) Name() string {
	return "common"
}

func (m *CommonModule) Priority() int {
	return 100 // 最后初始化
}

func (m *CommonModule) Init(ctx *registry.ModuleContext) error {
	h := commonHandler.NewHandler(
		ctx.DB,
		ctx.Uploader,
		ctx.Config.Upload,
		ctx.Logger.Named("common"),
		ctx.Metrics,
		ctx.Config.IsDevelopment(),
	)
	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *commonHandler.Handler) {
	r.GET("/", h.Root)
	r.GET("/api/health", h.Health)
	r.POST("/api/upload-images", h.UploadImages)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(h.NotFound)
}
