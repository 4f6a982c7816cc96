package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"folio-cms/pkg/logger"
	"folio-cms/services/content/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	created := &entity.Post{ID: "post-123", Slug: "hello-world", Title: "Hello", Status: entity.StatusDraft}
	mockUseCase.On("CreatePost", mock.Anything, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Slug == "hello-world" && p.Title == "Hello" && p.Status == ""
	})).Return(created, nil)

	w := performJSON(router, "POST", "/posts", map[string]interface{}{
		"slug":  "hello-world",
		"title": "Hello",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var response entity.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "post-123", response.ID)
	assert.Equal(t, entity.StatusDraft, response.Status)

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_InvalidSlug(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	w := performJSON(router, "POST", "/posts", map[string]interface{}{
		"slug":  "Hello World",
		"title": "Hello",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestCreatePost_SlugTaken(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/posts", handler.CreatePost)

	mockUseCase.On("CreatePost", mock.Anything, mock.Anything).Return(nil, entity.ErrSlugTaken)

	w := performJSON(router, "POST", "/posts", map[string]interface{}{
		"slug":  "hello-world",
		"title": "Hello",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:slug", handler.GetPost)

	full := &entity.FullPost{
		Post: entity.Post{ID: "post-123", Slug: "hello-world", Title: "Hello"},
		Aggregates: entity.Aggregates{
			Content:       "# Hi",
			ContentFormat: entity.FormatMarkdown,
			Gallery:       []entity.GalleryItem{},
			Downloads:     []entity.DownloadItem{},
			FAQs:          []entity.FAQItem{},
			Recommended:   []entity.RecommendedItem{},
		},
	}
	mockUseCase.On("GetFullPost", mock.Anything, "hello-world").Return(full, nil)

	w := performJSON(router, "GET", "/posts/hello-world", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "hello-world", response["slug"])
	assert.Equal(t, "# Hi", response["content"])
	assert.Equal(t, []interface{}{}, response["gallery"])
	assert.Nil(t, response["seo"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts/:slug", handler.GetPost)

	mockUseCase.On("GetFullPost", mock.Anything, "nonexistent").Return(nil, nil)

	w := performJSON(router, "GET", "/posts/nonexistent", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post not found", response["error"])
}

func TestListPosts_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	posts := []*entity.Post{
		{ID: "post-1", Slug: "one", Title: "One"},
		{ID: "post-2", Slug: "two", Title: "Two"},
	}
	mockUseCase.On("ListPosts", mock.Anything, entity.PostFilter{
		Status: entity.StatusPublished,
		Tag:    "go",
		Limit:  10,
		Offset: 20,
	}).Return(posts, nil)

	w := performJSON(router, "GET", "/posts?status=published&tag=go&limit=10&offset=20", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}

func TestListPosts_BadQuery(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/posts", handler.ListPosts)

	for _, query := range []string{"?limit=abc", "?offset=-1", "?status=deleted"} {
		w := performJSON(router, "GET", "/posts"+query, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	mockUseCase.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", handler.DeletePost)

	mockUseCase.On("DeletePost", mock.Anything, "post-123").Return(nil)

	w := performJSON(router, "DELETE", "/posts/post-123", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Post deleted successfully", response["message"])
}

func TestDeletePost_ChildFailure(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/posts/:id", handler.DeletePost)

	mockUseCase.On("DeletePost", mock.Anything, "post-123").Return(errors.New("failed to clear gallery: connection reset"))

	w := performJSON(router, "DELETE", "/posts/post-123", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Failed to delete post", response["error"])
}
