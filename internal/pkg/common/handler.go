package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"community_api/internal/pkg/config"
	"community_api/internal/pkg/uploader"
	"community_api/pkg/apperr"
	"community_api/pkg/database"
	"community_api/pkg/metrics"
	"community_api/pkg/response"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// UploadField multipart 表单中的图片字段名
const UploadField = "images"

type Handler struct {
	db       *gorm.DB
	uploader uploader.Uploader
	limits   config.UploadConfig
	log      *zap.Logger
	metrics  *metrics.MetricsCollector
	debug    bool
}

func NewHandler(db *gorm.DB, u uploader.Uploader, limits config.UploadConfig, log *zap.Logger, m *metrics.MetricsCollector, debug bool) *Handler {
	if limits.Concurrency <= 0 {
		limits.Concurrency = 5
	}
	return &Handler{db: db, uploader: u, limits: limits, log: log, metrics: m, debug: debug}
}

// Root API 说明
// @Summary API 说明
// @Tags Common
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Community API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":   "GET /api/health",
			"upload":   "POST /api/upload-images",
			"posts":    "GET|POST /api/posts",
			"post":     "GET /api/posts/:id",
			"like":     "POST /api/posts/:id/like",
			"comments": "GET /api/comments/:postId, POST /api/comments",
		},
	})
}

// Health 健康检查，数据库不可用时仍返回 200
// @Summary 健康检查
// @Tags Common
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	dbStatus := "connected"
	if h.db == nil {
		dbStatus = "disconnected"
	} else if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.log.Warn("Health check database ping failed", zap.Error(err))
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "Community API is running",
		"database":  dbStatus,
	})
}

// NotFound 未匹配路由
func (h *Handler) NotFound(c *gin.Context) {
	response.Error(c, http.StatusNotFound, apperr.CodeRouteNotFound, "Route not found")
}

type image struct {
	name        string
	contentType string
	data        []byte
}

// UploadImages 批量上传图片
// @Summary 上传图片到媒体服务
// @Tags Common
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "图片，最多 5 张，每张不超过 5MB"
// @Success 200 {object} map[string]interface{} "imageUrls"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/upload-images [post]
func (h *Handler) UploadImages(c *gin.Context) {
	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File[UploadField]
	}

	images, err := h.readImages(files)
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}

	urls, err := h.uploadAll(c.Request.Context(), images)
	if err != nil {
		h.log.Error("Image upload failed", zap.Int("count", len(images)), zap.Error(err))
		response.Fail(c, apperr.Upload(http.StatusInternalServerError, apperr.CodeUploadFailed, "Failed to upload images", err), h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Images uploaded successfully",
		"imageUrls": urls,
	})
}

// readImages 校验数量、大小和类型，全部通过后才开始上传
func (h *Handler) readImages(files []*multipart.FileHeader) ([]image, error) {
	if len(files) == 0 {
		return nil, apperr.Upload(http.StatusBadRequest, apperr.CodeNoFiles, "No files uploaded", nil)
	}
	if len(files) > h.limits.MaxFiles {
		return nil, apperr.Upload(http.StatusBadRequest, apperr.CodeLimitFileCount,
			fmt.Sprintf("Too many files. Maximum is %d", h.limits.MaxFiles), nil)
	}

	images := make([]image, 0, len(files))
	for _, f := range files {
		if f.Size > h.limits.MaxFileSize {
			return nil, apperr.Upload(http.StatusBadRequest, apperr.CodeLimitFileSize,
				fmt.Sprintf("File too large. Maximum size is %dMB", h.limits.MaxFileSize>>20), nil)
		}
		if !isImage(f.Header.Get("Content-Type")) {
			return nil, invalidType(f.Filename)
		}

		data, err := readFile(f, h.limits.MaxFileSize)
		if err != nil {
			return nil, apperr.Upload(http.StatusBadRequest, apperr.CodeNoFiles, "Could not read uploaded file", err)
		}
		if int64(len(data)) > h.limits.MaxFileSize {
			return nil, apperr.Upload(http.StatusBadRequest, apperr.CodeLimitFileSize,
				fmt.Sprintf("File too large. Maximum size is %dMB", h.limits.MaxFileSize>>20), nil)
		}

		// 声明的类型与实际内容都必须是图片
		detected := mimetype.Detect(data)
		if !isImage(detected.String()) {
			return nil, invalidType(f.Filename)
		}

		images = append(images, image{name: f.Filename, contentType: detected.String(), data: data})
	}
	return images, nil
}

// uploadAll 并发上传，返回的 URL 与输入顺序一致
func (h *Handler) uploadAll(ctx context.Context, images []image) ([]string, error) {
	urls := make([]string, len(images))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.limits.Concurrency)

	for i, img := range images {
		i, img := i, img
		g.Go(func() error {
			url, err := h.uploader.Upload(ctx, img.name, img.contentType, bytes.NewReader(img.data))
			h.metrics.RecordImageUpload(err == nil)
			if err != nil {
				return fmt.Errorf("upload %s: %w", img.name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func readFile(f *multipart.FileHeader, limit int64) ([]byte, error) {
	src, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(io.LimitReader(src, limit+1))
}

func isImage(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "image/")
}

func invalidType(name string) error {
	return apperr.Upload(http.StatusBadRequest, apperr.CodeInvalidFileType,
		"Only image files are allowed", fmt.Errorf("rejected file %q", name))
}
