package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
)

func CommentRouter(rg *gin.RouterGroup, h *handler.CommentHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/stage/:stage/:stageItemId", h.ListByStageItem)
}
