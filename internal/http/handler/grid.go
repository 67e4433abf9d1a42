package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/grid"
	"github.com/naveen06raj/erp-api/internal/http/dto"
	"github.com/naveen06raj/erp-api/internal/service"
)

// GridHandler serves the opportunity, quotation, demo and order grids plus
// the filter-option lookups behind the grid UI dropdowns.
type GridHandler struct {
	gridService service.GridService
}

func NewGridHandler(gridService service.GridService) *GridHandler {
	return &GridHandler{gridService: gridService}
}

func (h *GridHandler) Opportunities(c *gin.Context) {
	gridEndpoint(c, h.gridService.Opportunities, dto.ToOpportunityGridRow)
}

func (h *GridHandler) Quotations(c *gin.Context) {
	gridEndpoint(c, h.gridService.Quotations, dto.ToQuotationGridRow)
}

func (h *GridHandler) Demos(c *gin.Context) {
	gridEndpoint(c, h.gridService.Demos, dto.ToDemoGridRow)
}

func (h *GridHandler) Orders(c *gin.Context) {
	gridEndpoint(c, h.gridService.Orders, dto.ToOrderGridRow)
}

func (h *GridHandler) FilterOptions(c *gin.Context) {
	entity := c.Param("entity")
	column := c.Param("column")

	options, err := h.gridService.FilterOptions(c.Request.Context(), entity, column)
	if err != nil {
		respondError(c, err, "failed to load filter options")
		return
	}

	c.JSON(http.StatusOK, gin.H{"options": options})
}

func gridEndpoint[M, T any](
	c *gin.Context,
	query func(ctx context.Context, f grid.Filter) (grid.Page[M], error),
	convert func(M) T,
) {
	ctx := c.Request.Context()

	var req dto.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := query(ctx, req.ToFilter())
	if err != nil {
		respondError(c, err, "failed to query grid")
		return
	}

	c.JSON(http.StatusOK, dto.ToGridResponse(page, convert))
}
