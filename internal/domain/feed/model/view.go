package model

import "encoding/json"

// Author 帖子/评论作者的展示信息
type Author struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Avatar      string `json:"avatar"`
	AccountType string `json:"accountType"`
}

// PublicPost 帖子对外响应结构
type PublicPost struct {
	ID         int64           `json:"id"`
	Type       string          `json:"type"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	Images     []string        `json:"images"`
	Tags       []string        `json:"tags"`
	Likes      int             `json:"likes"`
	Shares     int             `json:"shares"`
	Comments   int             `json:"comments"`
	Timestamp  string          `json:"timestamp"`
	Author     Author          `json:"author"`
	Liked      bool            `json:"liked"`
	Bookmarked bool            `json:"bookmarked"`
	Recipe     json.RawMessage `json:"recipe,omitempty"`
}

// PublicComment 评论对外响应结构
type PublicComment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Author    Author `json:"author"`
	Liked     bool   `json:"liked"`
}
