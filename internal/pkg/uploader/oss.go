package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"community_api/internal/pkg/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// ErrNotConfigured 未配置 OSS 时上传返回该错误
var ErrNotConfigured = errors.New("media service is not configured")

// Uploader 媒体服务：上传文件并返回可访问的（已处理的）图片地址
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}

type AliyunOSSUploader struct {
	bucket *oss.Bucket
	config config.OSSConfig
	now    func() time.Time
}

func NewAliyunOSSUploader(cfg config.OSSConfig) (*AliyunOSSUploader, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &AliyunOSSUploader{
		bucket: bucket,
		config: cfg,
		now:    time.Now,
	}, nil
}

// New 根据配置创建上传器，缺少 OSS 配置时返回 Disabled
func New(cfg config.OSSConfig) (Uploader, error) {
	if cfg.Endpoint == "" || cfg.BucketName == "" || cfg.AccessKeyID == "" {
		return Disabled{}, nil
	}
	return NewAliyunOSSUploader(cfg)
}

func (u *AliyunOSSUploader) Upload(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	key := objectKey(u.config.Folder, name, u.now())

	opts := []oss.Option{oss.WithContext(ctx)}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := u.bucket.PutObject(key, r, opts...); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return publicURL(u.config, key), nil
}

// objectKey folder/YYYYMMDD/uuid.ext
func objectKey(folder, name string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(name))
	return path.Join(folder, now.Format("20060102"), uuid.New().String()+ext)
}

// publicURL 拼接访问地址，附带 x-oss-process 图片处理参数
func publicURL(cfg config.OSSConfig, key string) string {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
		base = fmt.Sprintf("https://%s.%s", cfg.BucketName, endpoint)
	}

	u := base + "/" + key
	if cfg.Process != "" {
		u += "?x-oss-process=" + url.QueryEscape(cfg.Process)
	}
	return u
}

// Disabled 未配置媒体服务时使用，所有上传均失败
type Disabled struct{}

func (Disabled) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrNotConfigured
}
