package service

import (
	"testing"
	"time"

	"community_api/internal/domain/feed/model"
	identityModel "community_api/internal/domain/identity/model"
	baseModel "community_api/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "12/31/2024, 11:30:00 PM", NewComposer(nil).FormatTimestamp(ts))
	assert.Equal(t, "", NewComposer(time.UTC).FormatTimestamp(time.Time{}))

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "1/1/2025, 8:30:00 AM", NewComposer(tokyo).FormatTimestamp(ts))
}

func TestComposerPosts(t *testing.T) {
	c := NewComposer(time.UTC)
	rows := []model.Post{
		{BaseModel: baseModel.BaseModel{ID: 3}, UserID: "u1", Likes: -1, Images: model.StringSlice{"a.jpg"}},
		{BaseModel: baseModel.BaseModel{ID: 2}, UserID: "u2"},
		{BaseModel: baseModel.BaseModel{ID: 1}, UserID: "u1"},
	}
	identities := map[string]identityModel.DisplayIdentity{
		"u1": {ID: "u1", FullName: "jane doe", Username: "jane", AccountType: "pro"},
	}
	flags := map[int64]PostFlags{1: {Bookmarked: true}}

	posts := c.Posts(rows, identities, flags)

	require.Len(t, posts, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, model.Author{Name: "jane doe", Username: "jane", Avatar: "JD", AccountType: "pro"}, posts[0].Author)
	assert.Equal(t, 0, posts[0].Likes)
	assert.Equal(t, []string{"a.jpg"}, posts[0].Images)
	assert.Equal(t, anonymousAuthor, posts[1].Author)
	assert.Equal(t, []string{}, posts[1].Tags)
	assert.True(t, posts[2].Bookmarked)
	assert.False(t, posts[2].Liked)
}

func TestComposerEmpty(t *testing.T) {
	c := NewComposer(time.UTC)

	assert.Equal(t, []model.PublicPost{}, c.Posts(nil, nil, nil))
	assert.Equal(t, []model.PublicComment{}, c.Comments(nil, nil))
}
