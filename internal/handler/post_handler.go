package handler

import (
	"net/http"
	"strings"

	"github.com/blogapi/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type postRequest struct {
	Title     string   `json:"title" binding:"required"`
	Body      string   `json:"body" binding:"required"`
	CreatedBy string   `json:"created_by" binding:"required"`
	Tags      []string `json:"tags"`
}

// CreatePost 创建新文章及其标签，同一事务内写入
func (a *API) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, "title, body and created_by are required") {
		return
	}

	createdBy, err := uuid.Parse(strings.TrimSpace(req.CreatedBy))
	if err != nil {
		respondError(c, http.StatusBadRequest, "created_by must be a valid uuid")
		return
	}

	post, err := a.posts.Create(service.PostInput{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: createdBy,
		Tags:      req.Tags,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create post")
		return
	}

	respondData(c, http.StatusCreated, post)
}

// ListPosts 获取文章分页列表，搜索词跨标题、正文、作者与标签匹配
func (a *API) ListPosts(c *gin.Context) {
	page, ok := parsePositiveIntQuery(c, "page", 1)
	if !ok {
		respondError(c, http.StatusBadRequest, "page must be a positive integer")
		return
	}

	limit, ok := parsePositiveIntQuery(c, "limit", 10)
	if !ok {
		respondError(c, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	records, meta, err := a.posts.List(service.PostQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	})
	if err != nil {
		respondServiceError(c, err, "failed to fetch posts")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"records": records,
		"meta":    meta,
	})
}
