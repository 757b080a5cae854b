package uploader

import (
	"context"
	"strings"
	"testing"
	"time"

	"community_api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	key := objectKey("community-app", "Photo.JPG", now)

	assert.True(t, strings.HasPrefix(key, "community-app/20240305/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(key, "community-app/20240305/"), ".jpg"), 36)
}

func TestPublicURL(t *testing.T) {
	t.Run("bucket domain", func(t *testing.T) {
		cfg := config.OSSConfig{Endpoint: "https://oss-cn-hangzhou.aliyuncs.com", BucketName: "media"}
		assert.Equal(t, "https://media.oss-cn-hangzhou.aliyuncs.com/a/b.png", publicURL(cfg, "a/b.png"))
	})

	t.Run("cdn with transform", func(t *testing.T) {
		cfg := config.OSSConfig{
			PublicBaseURL: "https://cdn.example.com/",
			Process:       "image/resize,w_1200,m_lfit/quality,q_80/format,webp",
		}
		assert.Equal(t,
			"https://cdn.example.com/a/b.png?x-oss-process=image%2Fresize%2Cw_1200%2Cm_lfit%2Fquality%2Cq_80%2Fformat%2Cwebp",
			publicURL(cfg, "a/b.png"))
	})
}

func TestNewWithoutConfig(t *testing.T) {
	u, err := New(config.OSSConfig{})
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "a.png", "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
}
