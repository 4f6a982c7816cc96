package http

import (
	"net/http"

	"folio-cms/services/content/internal/entity"

	"github.com/gin-gonic/gin"
)

// GetServiceAggregates godoc
// @Summary      Get service page aggregates
// @Description  Service pages have no row of their own; their content lives only in child aggregates
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      200  {object}  entity.Aggregates
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /services/{id}/aggregates [get]
func (h *ContentHandler) GetServiceAggregates(c *gin.Context) {
	aggregates, err := h.contentUseCase.GetServiceAggregates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get service aggregates", err)
		return
	}

	c.JSON(http.StatusOK, aggregates)
}

// SaveServiceAggregates godoc
// @Summary      Save service page aggregates
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id path string true "Service ID"
// @Param        request body entity.AggregatesPayload true "Save payload"
// @Success      200  {object}  entity.SaveResult
// @Success      207  {object}  entity.SaveResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /services/{id}/aggregates [put]
func (h *ContentHandler) SaveServiceAggregates(c *gin.Context) {
	var payload entity.AggregatesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.contentUseCase.SaveServiceAggregates(c.Request.Context(), c.Param("id"), &payload)
	if err != nil {
		respondError(c, h.logger, "save service aggregates", err)
		return
	}

	respondSave(c, result)
}

// DeleteServiceAggregates godoc
// @Summary      Clear service page aggregates
// @Tags         services
// @Produce      json
// @Param        id path string true "Service ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /services/{id}/aggregates [delete]
func (h *ContentHandler) DeleteServiceAggregates(c *gin.Context) {
	if err := h.contentUseCase.DeleteServiceAggregates(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete service aggregates", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service aggregates deleted successfully"})
}
