package http

import (
	"net/http"
	"strconv"
	"time"

	"folio-cms/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

type CreateProjectRequest struct {
	Slug        string     `json:"slug" binding:"required,slug"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Client      string     `json:"client"`
	ProjectURL  string     `json:"project_url" binding:"omitempty,url"`
	Featured    bool       `json:"featured"`
	Status      string     `json:"status" binding:"omitempty,oneof=draft published archived"`
	PublishDate *time.Time `json:"publish_date"`
}

// ListProjects godoc
// @Summary      List projects
// @Description  List projects newest first, optionally filtered
// @Tags         projects
// @Produce      json
// @Param        status query string false "Filter by status" Enums(draft, published, archived)
// @Param        category query string false "Filter by category"
// @Param        tag query string false "Filter by tag"
// @Param        featured query bool false "Filter by featured flag"
// @Param        limit query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	status, ok := statusFilter(c)
	if !ok {
		return
	}
	limit, offset, ok := paging(c)
	if !ok {
		return
	}

	filter := entity.ProjectFilter{
		Status:   status,
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Limit:    limit,
		Offset:   offset,
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be true or false"})
			return
		}
		filter.Featured = &featured
	}

	projects, err := h.contentUseCase.ListProjects(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, "list projects", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request body CreateProjectRequest true "Project"
// @Success      201  {object}  entity.Project
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects [post]
func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := &entity.Project{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Tags:        req.Tags,
		Client:      req.Client,
		ProjectURL:  req.ProjectURL,
		Featured:    req.Featured,
		Status:      entity.Status(req.Status),
	}
	if req.PublishDate != nil {
		project.PublishDate = *req.PublishDate
	}

	created, err := h.contentUseCase.CreateProject(c.Request.Context(), project)
	if err != nil {
		respondError(c, h.logger, "create project", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProject godoc
// @Summary      Get full project
// @Description  Get a project by slug with all child aggregates and related projects
// @Tags         projects
// @Produce      json
// @Param        slug path string true "Project slug"
// @Success      200  {object}  entity.FullProject
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects/{slug} [get]
func (h *ContentHandler) GetProject(c *gin.Context) {
	full, err := h.contentUseCase.GetFullProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, "get project", err)
		return
	}
	if full == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, full)
}

// SaveProject godoc
// @Summary      Save full project
// @Description  Update the project row, related projects and any child aggregates present in the body. Responds 207 when some parts failed to save.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id path string true "Project ID"
// @Param        request body entity.SaveProjectPayload true "Save payload"
// @Success      200  {object}  entity.SaveResult
// @Success      207  {object}  entity.SaveResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ContentHandler) SaveProject(c *gin.Context) {
	var payload entity.SaveProjectPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.contentUseCase.SaveProject(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		respondError(c, h.logger, "save project", err)
		return
	}

	respondSave(c, result)
}

// DeleteProject godoc
// @Summary      Delete project
// @Description  Delete every child aggregate and related link of the project, then the project itself
// @Tags         projects
// @Produce      json
// @Param        id path string true "Project ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ContentHandler) DeleteProject(c *gin.Context) {
	if err := h.contentUseCase.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
