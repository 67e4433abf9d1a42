package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
)

func GridRouter(rg *gin.RouterGroup, h *handler.GridHandler) {
	rg.POST("/opportunities", h.Opportunities)
	rg.POST("/quotations", h.Quotations)
	rg.POST("/demos", h.Demos)
	rg.POST("/orders", h.Orders)
	rg.GET("/:entity/options/:column", h.FilterOptions)
}
