package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"community_api/internal/domain/feed/model"
	"community_api/internal/domain/feed/repository"
	identityService "community_api/internal/domain/identity/service"
	"community_api/pkg/apperr"
	"community_api/pkg/metrics"
	"community_api/pkg/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CreatePostInput 发帖参数
type CreatePostInput struct {
	Type    string
	Title   string
	Content string
	Tags    []string
	Images  []string
	Recipe  json.RawMessage
	UserID  string
}

// Validate 校验必填字段
func (in CreatePostInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(in.UserID) == "" {
		missing = append(missing, "userId")
	}
	return missingFields(missing)
}

// CreateCommentInput 评论参数
type CreateCommentInput struct {
	PostID  int64
	Content string
	UserID  string
}

// Validate 校验必填字段
func (in CreateCommentInput) Validate() error {
	var missing []string
	if in.PostID <= 0 {
		missing = append(missing, "postId")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(in.UserID) == "" {
		missing = append(missing, "userId")
	}
	return missingFields(missing)
}

func missingFields(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return apperr.Validation("Missing required fields: " + strings.Join(fields, ", "))
}

// FeedResult 信息流分页结果
type FeedResult struct {
	Posts      []model.PublicPost `json:"posts"`
	Pagination utils.PageInfo     `json:"pagination"`
}

type FeedService interface {
	GetFeed(ctx context.Context, viewerID string, p utils.Pagination) (*FeedResult, error)
	GetPost(ctx context.Context, viewerID string, id int64) (*model.PublicPost, error)
	CreatePost(ctx context.Context, in CreatePostInput) (*model.PublicPost, error)
	LikePost(ctx context.Context, id int64) (int, error)

	GetComments(ctx context.Context, postID int64) ([]model.PublicComment, error)
	CreateComment(ctx context.Context, in CreateCommentInput) (*model.PublicComment, error)
}

// Option 服务可选配置
type Option func(*feedService)

// WithViewerFlags 替换默认的查看者状态实现
func WithViewerFlags(v ViewerFlags) Option {
	return func(s *feedService) { s.viewer = v }
}

// WithLocation 时间展示所用时区
func WithLocation(loc *time.Location) Option {
	return func(s *feedService) { s.composer = NewComposer(loc) }
}

type feedService struct {
	repo     repository.FeedRepository
	identity identityService.Resolver
	composer *Composer
	viewer   ViewerFlags
	log      *zap.Logger
	metrics  *metrics.MetricsCollector
}

func NewFeedService(repo repository.FeedRepository, identity identityService.Resolver, log *zap.Logger, m *metrics.MetricsCollector, opts ...Option) FeedService {
	s := &feedService{
		repo:     repo,
		identity: identity,
		composer: NewComposer(time.UTC),
		viewer:   NoViewerFlags{},
		log:      log,
		metrics:  m,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Post ---

func (s *feedService) GetFeed(ctx context.Context, viewerID string, p utils.Pagination) (*FeedResult, error) {
	offset, limit := p.GetPageOffset()

	rows, err := s.repo.ListPosts(ctx, p.Type, offset, limit)
	if err != nil {
		return nil, s.storeError("list_posts", "Failed to fetch posts", err)
	}

	identities := s.identity.Resolve(ctx, postAuthors(rows))
	flags := s.viewer.Flags(ctx, viewerID, postIDs(rows))

	return &FeedResult{
		Posts:      s.composer.Posts(rows, identities, flags),
		Pagination: p.Info(len(rows)),
	}, nil
}

func (s *feedService) GetPost(ctx context.Context, viewerID string, id int64) (*model.PublicPost, error) {
	row, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Post not found")
		}
		return nil, s.storeError("get_post", "Failed to fetch post", err)
	}

	identities := s.identity.Resolve(ctx, []string{row.UserID})
	flags := s.viewer.Flags(ctx, viewerID, []int64{row.ID})

	post := s.composer.Post(row, identities, flags[row.ID])
	return &post, nil
}

func (s *feedService) CreatePost(ctx context.Context, in CreatePostInput) (*model.PublicPost, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	post := &model.Post{
		Type:    strings.TrimSpace(in.Type),
		Title:   in.Title,
		Content: in.Content,
		Images:  model.StringSlice(orEmpty(in.Images)),
		Tags:    model.StringSlice(orEmpty(in.Tags)),
		UserID:  in.UserID,
	}
	if post.Type == model.TypeRecipe && hasPayload(in.Recipe) {
		post.Recipe = in.Recipe
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, s.storeError("insert_post", "Failed to create post", err)
	}

	identities := s.identity.Resolve(ctx, []string{post.UserID})
	public := s.composer.Post(post, identities, PostFlags{})
	public.Timestamp = JustNow
	return &public, nil
}

// LikePost 点赞数原子自增，返回最新点赞数
func (s *feedService) LikePost(ctx context.Context, id int64) (int, error) {
	likes, err := s.repo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("Post not found")
		}
		return 0, s.storeError("like_post", "Failed to like post", err)
	}
	return likes, nil
}

// --- Comment ---

func (s *feedService) GetComments(ctx context.Context, postID int64) ([]model.PublicComment, error) {
	rows, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, s.storeError("list_comments", "Failed to fetch comments", err)
	}

	identities := s.identity.Resolve(ctx, commentAuthors(rows))
	return s.composer.Comments(rows, identities), nil
}

func (s *feedService) CreateComment(ctx context.Context, in CreateCommentInput) (*model.PublicComment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:  in.PostID,
		Content: in.Content,
		UserID:  in.UserID,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, s.storeError("insert_comment", "Failed to create comment", err)
	}

	// comment_count is best effort: the comment exists even if this fails
	if err := s.repo.IncrementCommentCount(ctx, in.PostID); err != nil {
		s.log.Warn("Failed to increment comment count",
			zap.Int64("post_id", in.PostID),
			zap.Int64("comment_id", comment.ID),
			zap.Error(err),
		)
		s.metrics.RecordBestEffortFailure("increment_comment_count")
	}

	identities := s.identity.Resolve(ctx, []string{comment.UserID})
	public := s.composer.Comment(comment, identities)
	public.Timestamp = JustNow
	return &public, nil
}

func (s *feedService) storeError(op, msg string, err error) error {
	s.log.Error(msg, zap.String("operation", op), zap.Error(err))
	s.metrics.RecordStoreError(op)
	return apperr.Store(msg, err)
}

func hasPayload(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null"
}

func postAuthors(rows []model.Post) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}

func postIDs(rows []model.Post) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func commentAuthors(rows []model.Comment) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.UserID)
	}
	return ids
}
