package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"community_api/internal/domain/feed/model"
	"community_api/internal/domain/feed/service"
	"community_api/internal/pkg/middleware"
	"community_api/pkg/apperr"
	"community_api/pkg/response"
	"community_api/pkg/utils"
	"community_api/pkg/validate"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	service service.FeedService
	debug   bool
}

func NewFeedHandler(s service.FeedService, debug bool) *FeedHandler {
	return &FeedHandler{service: s, debug: debug}
}

// CreatePostRequest 发帖输入
type CreatePostRequest struct {
	Type    string          `json:"type" binding:"required,notblank" example:"recipe"`
	Title   string          `json:"title" binding:"required,notblank"`
	Content string          `json:"content" binding:"required,notblank"`
	Tags    model.TagList   `json:"tags" swaggertype:"array,string"`
	Images  []string        `json:"images"`
	Recipe  json.RawMessage `json:"recipe" swaggertype:"object"`
	UserID  string          `json:"userId"` // 携带有效 token 时以 token 为准
}

// CreateCommentRequest 评论输入
type CreateCommentRequest struct {
	PostID  int64  `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required,notblank"`
	UserID  string `json:"userId"`
}

// GetFeed 获取帖子列表
// @Summary 获取帖子列表（按时间倒序）
// @Tags Feed
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10，最大 100"
// @Param type query string false "帖子类型"
// @Success 200 {object} service.FeedResult
// @Failure 500 {object} response.ErrorBody
// @Router /api/posts [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Fail(c, apperr.Validation("Invalid pagination parameters"), h.debug)
		return
	}

	result, err := h.service.GetFeed(c.Request.Context(), middleware.UserID(c), p)
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreatePost 发帖
// @Summary 发布帖子
// @Tags Feed
// @Accept json
// @Produce json
// @Param input body CreatePostRequest true "帖子内容"
// @Success 201 {object} map[string]interface{} "message, post"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/posts [post]
func (h *FeedHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validate.FromBindError(err), h.debug)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), service.CreatePostInput{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		Images:  req.Images,
		Recipe:  req.Recipe,
		UserID:  creatorID(c, req.UserID),
	})
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPost 获取单个帖子
// @Summary 帖子详情
// @Tags Feed
// @Produce json
// @Param id path int true "帖子ID"
// @Success 200 {object} map[string]interface{} "post"
// @Failure 404 {object} response.ErrorBody
// @Router /api/posts/{id} [get]
func (h *FeedHandler) GetPost(c *gin.Context) {
	id, ok := postID(c.Param("id"))
	if !ok {
		response.Fail(c, apperr.NotFound("Post not found"), h.debug)
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

// LikePost 点赞
// @Summary 点赞帖子
// @Tags Feed
// @Produce json
// @Param id path int true "帖子ID"
// @Success 200 {object} map[string]interface{} "message, liked, likes"
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/posts/{id}/like [post]
func (h *FeedHandler) LikePost(c *gin.Context) {
	id, ok := postID(c.Param("id"))
	if !ok {
		response.Fail(c, apperr.NotFound("Post not found"), h.debug)
		return
	}

	likes, err := h.service.LikePost(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post liked successfully",
		"liked":   true,
		"likes":   likes,
	})
}

// GetComments 获取帖子评论
// @Summary 评论列表（按时间正序）
// @Tags Feed
// @Produce json
// @Param postId path int true "帖子ID"
// @Success 200 {object} map[string]interface{} "comments"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/comments/{postId} [get]
func (h *FeedHandler) GetComments(c *gin.Context) {
	id, ok := postID(c.Param("postId"))
	if !ok {
		response.Fail(c, apperr.Validation("Invalid post id"), h.debug)
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment 发表评论
// @Summary 发表评论
// @Tags Feed
// @Accept json
// @Produce json
// @Param input body CreateCommentRequest true "评论内容"
// @Success 201 {object} map[string]interface{} "message, comment"
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /api/comments [post]
func (h *FeedHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, validate.FromBindError(err), h.debug)
		return
	}

	comment, err := h.service.CreateComment(c.Request.Context(), service.CreateCommentInput{
		PostID:  req.PostID,
		Content: req.Content,
		UserID:  creatorID(c, req.UserID),
	})
	if err != nil {
		response.Fail(c, err, h.debug)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// creatorID 优先使用 token 中的用户
func creatorID(c *gin.Context, fromBody string) string {
	if id := middleware.UserID(c); id != "" {
		return id
	}
	return fromBody
}

func postID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
