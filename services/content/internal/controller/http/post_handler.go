package http

import (
	"net/http"
	"time"

	"folio-cms/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

type CreatePostRequest struct {
	Slug        string     `json:"slug" binding:"required,slug"`
	Title       string     `json:"title" binding:"required"`
	Excerpt     string     `json:"excerpt"`
	Thumbnail   string     `json:"thumbnail"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Author      string     `json:"author"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishDate *time.Time `json:"publish_date"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  List posts newest first, optionally filtered
// @Tags         posts
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, published, archived)
// @Param        category query string false "Filter by category"
// @Param        tag query string false "Filter by tag"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *ContentHandler) ListPosts(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	limit, offset, ok := paging(c)
	if !ok {
		return
	}

	posts, err := h.contentUseCase.ListPosts(c.Request.Context(), entity.PostFilter{
		Status:   status,
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondError(c, h.logger, "list posts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Create a post row and its empty content. Status defaults to draft, publish date to now.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := &entity.Post{
		Slug:      req.Slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Thumbnail: req.Thumbnail,
		Category:  req.Category,
		Tags:      req.Tags,
		Author:    req.Author,
		Status:    entity.Status(req.Status),
	}
	if req.PublishDate != nil {
		post.PublishDate = *req.PublishDate
	}

	created, err := h.contentUseCase.CreatePost(c.Request.Context(), post)
	if err != nil {
		respondError(c, h.logger, "create post", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetPost godoc
// @Summary      Get full post
// @Description  Get a post by slug with content, gallery, downloads, FAQs, recommended items and SEO
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200  {object}  entity.FullPost
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{slug} [get]
func (h *ContentHandler) GetPost(c *gin.Context) {
	full, err := h.contentUseCase.GetFullPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, "get post", err)
		return
	}
	if full == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, full)
}

// SavePost godoc
// @Summary      Save full post
// @Description  Update the post row and any child aggregates present in the body. An omitted field is left unchanged, an empty list clears. Responds 207 when some parts failed to save.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body entity.SavePostPayload true "Save payload"
// @Success      200  {object}  entity.SaveResult
// @Success      207  {object}  entity.SaveResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *ContentHandler) SavePost(c *gin.Context) {
	var payload entity.SavePostPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.contentUseCase.SavePost(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		respondError(c, h.logger, "save post", err)
		return
	}

	respondSave(c, result)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete every child aggregate of the post, then the post itself
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.contentUseCase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete post", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
