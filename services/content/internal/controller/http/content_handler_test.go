package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio-cms/pkg/logger"
	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockContentUseCase is a mock implementation of ContentUseCase
type MockContentUseCase struct {
	mock.Mock
}

func (m *MockContentUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockContentUseCase) CreatePost(ctx context.Context, post *entity.Post) (*entity.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockContentUseCase) GetFullPost(ctx context.Context, slug string) (*entity.FullPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FullPost), args.Error(1)
}

func (m *MockContentUseCase) SavePost(ctx context.Context, id string, payload *entity.SavePostPayload) (*entity.SaveResult, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveResult), args.Error(1)
}

func (m *MockContentUseCase) DeletePost(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) ListProjects(ctx context.Context, filter entity.ProjectFilter) ([]*entity.Project, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Project), args.Error(1)
}

func (m *MockContentUseCase) CreateProject(ctx context.Context, project *entity.Project) (*entity.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Project), args.Error(1)
}

func (m *MockContentUseCase) GetFullProject(ctx context.Context, slug string) (*entity.FullProject, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FullProject), args.Error(1)
}

func (m *MockContentUseCase) SaveProject(ctx context.Context, id string, payload *entity.SaveProjectPayload) (*entity.SaveResult, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveResult), args.Error(1)
}

func (m *MockContentUseCase) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentUseCase) GetServiceAggregates(ctx context.Context, serviceID string) (*entity.Aggregates, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aggregates), args.Error(1)
}

func (m *MockContentUseCase) SaveServiceAggregates(ctx context.Context, serviceID string, payload *entity.AggregatesPayload) (*entity.SaveResult, error) {
	args := m.Called(ctx, serviceID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SaveResult), args.Error(1)
}

func (m *MockContentUseCase) DeleteServiceAggregates(ctx context.Context, serviceID string) error {
	args := m.Called(ctx, serviceID)
	return args.Error(0)
}

func (m *MockContentUseCase) CheckParent(ctx context.Context, parent entity.ParentRef) error {
	args := m.Called(ctx, parent)
	return args.Error(0)
}

func (m *MockContentUseCase) ParentChanged(ctx context.Context, parent entity.ParentRef) {
	m.Called(ctx, parent)
}

var _ usecase.ContentUseCase = (*MockContentUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := RegisterValidators(); err != nil {
		panic(err)
	}
	return gin.New()
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestNewContentHandler(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	assert.NotNil(t, handler)
	assert.Equal(t, mockUseCase, handler.contentUseCase)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", &entity.ValidationError{Problems: []string{"title is required"}}, http.StatusBadRequest, "Validation failed"},
		{"invalid parent", entity.ErrInvalidParent, http.StatusBadRequest, "invalid parent"},
		{"not found", errors.Join(errors.New("post x"), entity.ErrNotFound), http.StatusNotFound, "not found"},
		{"slug taken", entity.ErrSlugTaken, http.StatusConflict, "slug already in use"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "Failed to do thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/", func(c *gin.Context) {
				respondError(c, logger.New(), "do thing", tt.err)
			})

			w := performJSON(router, "GET", "/", nil)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestSavePost_Success(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.SavePost)

	mockUseCase.On("SavePost", mock.Anything, "post-123", mock.MatchedBy(func(p *entity.SavePostPayload) bool {
		return p.Content != nil && *p.Content == "# Hi" && p.Gallery != nil && len(*p.Gallery) == 1 && p.FAQs == nil
	})).Return(&entity.SaveResult{Success: true, Errors: []string{}}, nil)

	w := performJSON(router, "PUT", "/posts/post-123", `{"content":"# Hi","gallery":[{"url":"a.png"}]}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response entity.SaveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Empty(t, response.Errors)

	mockUseCase.AssertExpectations(t)
}

func TestSavePost_PartialFailure(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.SavePost)

	mockUseCase.On("SavePost", mock.Anything, "post-123", mock.Anything).
		Return(&entity.SaveResult{Success: false, Errors: []string{"gallery: connection reset"}}, nil)

	w := performJSON(router, "PUT", "/posts/post-123", `{"gallery":[{"url":"a.png"}]}`)

	assert.Equal(t, http.StatusMultiStatus, w.Code)
	var response entity.SaveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, []string{"gallery: connection reset"}, response.Errors)
}

func TestSavePost_ValidationFailed(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.SavePost)

	mockUseCase.On("SavePost", mock.Anything, "post-123", mock.Anything).
		Return(nil, &entity.ValidationError{Problems: []string{"gallery[0]: url is required"}})

	w := performJSON(router, "PUT", "/posts/post-123", `{"gallery":[{"alt":"x"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Validation failed", response["error"])
	assert.Equal(t, []interface{}{"gallery[0]: url is required"}, response["details"])
}

func TestSavePost_NotFound(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.SavePost)

	mockUseCase.On("SavePost", mock.Anything, "missing", mock.Anything).Return(nil, entity.ErrNotFound)

	w := performJSON(router, "PUT", "/posts/missing", `{"content":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavePost_MalformedBody(t *testing.T) {
	mockUseCase := new(MockContentUseCase)
	handler := NewContentHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/posts/:id", handler.SavePost)

	w := performJSON(router, "PUT", "/posts/post-123", `{"gallery":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SavePost", mock.Anything, mock.Anything, mock.Anything)
}
