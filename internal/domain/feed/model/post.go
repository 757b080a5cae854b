package model

import (
	"encoding/json"

	baseModel "community_api/pkg/model"
)

const (
	TypeText   = "text"
	TypeImage  = "image"
	TypeRecipe = "recipe"
)

// Post 帖子
type Post struct {
	baseModel.BaseModel
	Type         string          `gorm:"not null" json:"type"` // text, image, recipe
	Title        string          `gorm:"not null" json:"title"`
	Content      string          `gorm:"not null" json:"content"`
	Images       StringSlice     `gorm:"type:jsonb" json:"images"`
	Tags         StringSlice     `gorm:"type:jsonb" json:"tags"`
	Likes        int             `json:"likes"`
	Shares       int             `json:"shares"`
	CommentCount int             `gorm:"column:comment_count" json:"comment_count"` // 冗余计数，只增不减
	UserID       string          `gorm:"column:user_id;not null" json:"user_id"`
	Recipe       json.RawMessage `gorm:"type:jsonb" json:"recipe,omitempty"` // 原样透传
}

func (Post) TableName() string {
	return "posts"
}

// Comment 评论
type Comment struct {
	baseModel.BaseModel
	PostID  int64  `gorm:"not null;index" json:"post_id"`
	Content string `gorm:"not null" json:"content"`
	UserID  string `gorm:"column:user_id;not null" json:"user_id"`
}

func (Comment) TableName() string {
	return "comments"
}
