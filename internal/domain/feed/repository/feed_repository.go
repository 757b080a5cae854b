package repository

import (
	"context"

	"community_api/internal/domain/feed/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedRepository interface {
	ListPosts(ctx context.Context, postType string, offset, limit int) ([]model.Post, error)
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	IncrementLikes(ctx context.Context, id int64) (int, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	IncrementCommentCount(ctx context.Context, postID int64) error
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// --- Post ---

func (r *feedRepository) ListPosts(ctx context.Context, postType string, offset, limit int) ([]model.Post, error) {
	var posts []model.Post

	query := r.db.WithContext(ctx).Model(&model.Post{})
	if postType != "" {
		query = query.Where("type = ?", postType)
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *feedRepository) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *feedRepository) CreatePost(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// IncrementLikes 原子自增点赞数并返回新值，帖子不存在时返回 gorm.ErrRecordNotFound
func (r *feedRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	var post model.Post
	result := r.db.WithContext(ctx).
		Model(&post).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "likes"}}}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("COALESCE(likes, 0) + ?", 1))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return post.Likes, nil
}

// --- Comment ---

func (r *feedRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// IncrementCommentCount 调用数据库函数 increment_comment_count 原子自增评论数
func (r *feedRepository) IncrementCommentCount(ctx context.Context, postID int64) error {
	return r.db.WithContext(ctx).Exec("SELECT increment_comment_count(?)", postID).Error
}

func (r *feedRepository) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
