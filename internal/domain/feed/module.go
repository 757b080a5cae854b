package feed

import (
	"fmt"
	"time"

	"community_api/internal/domain/feed/handler"
	"community_api/internal/domain/feed/repository"
	"community_api/internal/domain/feed/service"
	identityRepo "community_api/internal/domain/identity/repository"
	identityService "community_api/internal/domain/identity/service"
	"community_api/internal/pkg/middleware"
	"community_api/internal/pkg/registry"
	"community_api/pkg/validate"

	"github.com/gin-gonic/gin"
)

// FeedModule 帖子与评论模块
type FeedModule struct{}

func init() {
	registry.Register(&FeedModule{})
}

func (m *FeedModule) Name() string {
	return "feed"
}

func (m *FeedModule) Priority() int {
	return 10
}

func (m *FeedModule) Init(ctx *registry.ModuleContext) error {
	validate.Setup()

	loc, err := time.LoadLocation(ctx.Config.App.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", ctx.Config.App.Timezone, err)
	}

	// 1. 依赖注入
	resolver := identityService.NewResolver(
		identityRepo.NewIdentityRepository(ctx.DB, ctx.Config.Identity.Table),
		ctx.Logger.Named("identity"),
		ctx.Metrics,
	)
	fService := service.NewFeedService(
		repository.NewFeedRepository(ctx.DB),
		resolver,
		ctx.Logger.Named("feed"),
		ctx.Metrics,
		service.WithLocation(loc),
	)
	fHandler := handler.NewFeedHandler(fService, ctx.Config.IsDevelopment())

	// 2. 路由注册
	setupRoutes(ctx.Router, fHandler, ctx.Config.JWT.Secret)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FeedHandler, jwtSecret string) {
	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(jwtSecret))

	api.GET("/posts", h.GetFeed)
	api.POST("/posts", h.CreatePost)
	api.GET("/posts/:id", h.GetPost)
	api.POST("/posts/:id/like", h.LikePost)

	api.GET("/comments/:postId", h.GetComments)
	api.POST("/comments", h.CreateComment)
}
