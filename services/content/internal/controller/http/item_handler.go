package http

import (
	"net/http"

	"folio-cms/pkg/logger"
	"folio-cms/services/content/internal/entity"
	"folio-cms/services/content/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ItemHandler serves one list aggregate (gallery, downloads, faqs or
// recommended) item by item.
type ItemHandler[T usecase.Item, P usecase.Item] struct {
	kind        string
	itemUseCase usecase.ItemUseCase[T, P]
	logger      *logger.Logger
}

func NewItemHandler[T usecase.Item, P usecase.Item](kind string, itemUseCase usecase.ItemUseCase[T, P], logger *logger.Logger) *ItemHandler[T, P] {
	return &ItemHandler[T, P]{
		kind:        kind,
		itemUseCase: itemUseCase,
		logger:      logger,
	}
}

// Register mounts:
//
//	GET|POST|PUT /parents/:parent_type/:parent_id/<kind>
//	PATCH|DELETE /<kind>/:id
func (h *ItemHandler[T, P]) Register(rg *gin.RouterGroup) {
	byParent := "/parents/:parent_type/:parent_id/" + h.kind
	rg.GET(byParent, h.List)
	rg.POST(byParent, h.Add)
	rg.PUT(byParent, h.Replace)

	rg.PATCH("/"+h.kind+"/:id", h.Update)
	rg.DELETE("/"+h.kind+"/:id", h.Delete)
}

// List godoc
// @Summary      List items of a child aggregate
// @Tags         items
// @Produce      json
// @Param        parent_type path string true "Parent type" Enums(post, project, service)
// @Param        parent_id path string true "Parent ID"
// @Param        kind path string true "Aggregate" Enums(gallery, downloads, faqs, recommended)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /parents/{parent_type}/{parent_id}/{kind} [get]
func (h *ItemHandler[T, P]) List(c *gin.Context) {
	parent, ok := parentRef(c)
	if !ok {
		return
	}

	items, err := h.itemUseCase.List(c.Request.Context(), parent)
	if err != nil {
		respondError(c, h.logger, "list "+h.kind, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Add godoc
// @Summary      Append an item to a child aggregate
// @Description  Without an order the item goes after the current last one
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        parent_type path string true "Parent type" Enums(post, project, service)
// @Param        parent_id path string true "Parent ID"
// @Param        kind path string true "Aggregate" Enums(gallery, downloads, faqs, recommended)
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /parents/{parent_type}/{parent_id}/{kind} [post]
func (h *ItemHandler[T, P]) Add(c *gin.Context) {
	parent, ok := parentRef(c)
	if !ok {
		return
	}

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := h.itemUseCase.Add(c.Request.Context(), parent, item)
	if err != nil {
		respondError(c, h.logger, "add "+h.kind+" item", err)
		return
	}

	c.JSON(http.StatusCreated, added)
}

// Replace godoc
// @Summary      Replace a child aggregate
// @Description  The body is the complete list; an empty list clears it
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        parent_type path string true "Parent type" Enums(post, project, service)
// @Param        parent_id path string true "Parent ID"
// @Param        kind path string true "Aggregate" Enums(gallery, downloads, faqs, recommended)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /parents/{parent_type}/{parent_id}/{kind} [put]
func (h *ItemHandler[T, P]) Replace(c *gin.Context) {
	parent, ok := parentRef(c)
	if !ok {
		return
	}

	var items []T
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []T{}
	}

	saved, err := h.itemUseCase.Replace(c.Request.Context(), parent, items)
	if err != nil {
		respondError(c, h.logger, "replace "+h.kind, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": saved, "count": len(saved)})
}

// Update godoc
// @Summary      Patch one item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        kind path string true "Aggregate" Enums(gallery, downloads, faqs, recommended)
// @Param        id path string true "Item ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /{kind}/{id} [patch]
func (h *ItemHandler[T, P]) Update(c *gin.Context) {
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.itemUseCase.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, h.logger, "update "+h.kind+" item", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete one item
// @Tags         items
// @Produce      json
// @Param        kind path string true "Aggregate" Enums(gallery, downloads, faqs, recommended)
// @Param        id path string true "Item ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /{kind}/{id} [delete]
func (h *ItemHandler[T, P]) Delete(c *gin.Context) {
	if err := h.itemUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete "+h.kind+" item", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// parentRef reads the :parent_type and :parent_id route params.
func parentRef(c *gin.Context) (entity.ParentRef, bool) {
	parent, err := entity.ParseParentRef(c.Param("parent_type"), c.Param("parent_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return entity.ParentRef{}, false
	}
	return parent, true
}
