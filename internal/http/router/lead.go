package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
)

func LeadRouter(rg *gin.RouterGroup, h *handler.LeadHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/grid", h.Grid)
	rg.POST("/grid/export", h.Export)
}
