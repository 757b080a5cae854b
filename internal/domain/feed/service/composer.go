package service

import (
	"time"

	"community_api/internal/domain/feed/model"
	identityModel "community_api/internal/domain/identity/model"
)

// TimestampLayout 帖子/评论时间的展示格式
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// JustNow 新建内容的时间展示
const JustNow = "Just now"

var anonymousAuthor = model.Author{
	Name:        identityModel.AnonymousName,
	Username:    identityModel.AnonymousUsername,
	Avatar:      identityModel.Initials(identityModel.AnonymousName),
	AccountType: identityModel.DefaultAccountType,
}

// Composer 将存储记录与身份信息组装为响应结构
type Composer struct {
	loc *time.Location
}

func NewComposer(loc *time.Location) *Composer {
	if loc == nil {
		loc = time.UTC
	}
	return &Composer{loc: loc}
}

// FormatTimestamp 格式化创建时间
func (c *Composer) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(c.loc).Format(TimestampLayout)
}

// Posts 按原顺序组装帖子
func (c *Composer) Posts(rows []model.Post, identities map[string]identityModel.DisplayIdentity, flags map[int64]PostFlags) []model.PublicPost {
	out := make([]model.PublicPost, 0, len(rows))
	for i := range rows {
		out = append(out, c.Post(&rows[i], identities, flags[rows[i].ID]))
	}
	return out
}

// Post 组装单个帖子
func (c *Composer) Post(row *model.Post, identities map[string]identityModel.DisplayIdentity, flags PostFlags) model.PublicPost {
	return model.PublicPost{
		ID:         row.ID,
		Type:       row.Type,
		Title:      row.Title,
		Content:    row.Content,
		Images:     orEmpty(row.Images),
		Tags:       orEmpty(row.Tags),
		Likes:      nonNegative(row.Likes),
		Shares:     nonNegative(row.Shares),
		Comments:   nonNegative(row.CommentCount),
		Timestamp:  c.FormatTimestamp(row.CreatedAt),
		Author:     authorOf(identities, row.UserID),
		Liked:      flags.Liked,
		Bookmarked: flags.Bookmarked,
		Recipe:     row.Recipe,
	}
}

// Comments 按原顺序组装评论
func (c *Composer) Comments(rows []model.Comment, identities map[string]identityModel.DisplayIdentity) []model.PublicComment {
	out := make([]model.PublicComment, 0, len(rows))
	for i := range rows {
		out = append(out, c.Comment(&rows[i], identities))
	}
	return out
}

// Comment 组装单条评论
func (c *Composer) Comment(row *model.Comment, identities map[string]identityModel.DisplayIdentity) model.PublicComment {
	return model.PublicComment{
		ID:        row.ID,
		PostID:    row.PostID,
		Content:   row.Content,
		Timestamp: c.FormatTimestamp(row.CreatedAt),
		Author:    authorOf(identities, row.UserID),
	}
}

func authorOf(identities map[string]identityModel.DisplayIdentity, userID string) model.Author {
	identity, ok := identities[userID]
	if !ok {
		return anonymousAuthor
	}
	return model.Author{
		Name:        identity.FullName,
		Username:    identity.Username,
		Avatar:      identityModel.Initials(identity.FullName),
		AccountType: identity.AccountType,
	}
}

func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
