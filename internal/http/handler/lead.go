package handler

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/export"
	"github.com/naveen06raj/erp-api/internal/http/dto"
	"github.com/naveen06raj/erp-api/internal/service"
)

type LeadHandler struct {
	leadService service.LeadService
}

func NewLeadHandler(leadService service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := req.ToModel()
	if _, err := h.leadService.Create(ctx, lead); err != nil {
		respondError(c, err, "failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeadResponse(lead))
}

func (h *LeadHandler) GetByID(c *gin.Context) {
	leadID, ok := pathID(c, "id")
	if !ok {
		return
	}

	lead, err := h.leadService.GetByID(c.Request.Context(), leadID)
	if err != nil {
		respondError(c, err, "failed to load lead")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *LeadHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	leadID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead := req.ToModel(leadID)
	if err := h.leadService.Update(ctx, lead); err != nil {
		respondError(c, err, "failed to update lead")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeadResponse(lead))
}

func (h *LeadHandler) Delete(c *gin.Context) {
	leadID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), leadID); err != nil {
		respondError(c, err, "failed to delete lead")
		return
	}

	c.Status(http.StatusNoContent)
}

// Grid serves the lead grid: filter, search, sort and paginate in one call.
func (h *LeadHandler) Grid(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.leadService.Grid(ctx, req.ToFilter())
	if err != nil {
		respondError(c, err, "failed to query lead grid")
		return
	}

	c.JSON(http.StatusOK, dto.ToGridResponse(page, dto.ToLeadGridRow))
}

// Export streams the full filtered set as a CSV download. The request's page
// spec is ignored; the grid runs unbounded so every matching row is exported.
func (h *LeadHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GridRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := req.ToFilter()
	filter.Unbounded = true

	page, err := h.leadService.Grid(ctx, filter)
	if err != nil {
		respondError(c, err, "failed to query lead grid")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteLeadsCSV(&buf, page.Results); err != nil {
		slog.ErrorContext(ctx, "failed to render csv", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export leads"})
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
