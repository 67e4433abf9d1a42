package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
)

func ActivityRouter(rg *gin.RouterGroup, h *handler.ActivityHandler) {
	rg.POST("/:kind", h.Create)
	rg.GET("/:kind/stage-item/:stageItemId", h.ListByStageItem)
	rg.DELETE("/:kind/:id", h.Deactivate)
}
