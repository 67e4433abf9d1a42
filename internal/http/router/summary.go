package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
)

func SummaryRouter(rg *gin.RouterGroup, h *handler.SummaryHandler) {
	rg.POST("", h.Emit)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.DELETE("/:id", h.Deactivate)
	rg.GET("/timeline/:stageItemId", h.Timeline)
}
