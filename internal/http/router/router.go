package router

import (
	"github.com/gin-gonic/gin"

	"github.com/naveen06raj/erp-api/internal/http/handler"
	"github.com/naveen06raj/erp-api/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		summaryHandler := handler.NewSummaryHandler(services.Summaries(), services.Timeline())
		SummaryRouter(v1.Group("/summaries"), summaryHandler)

		commentHandler := handler.NewCommentHandler(services.Comments())
		CommentRouter(v1.Group("/comments"), commentHandler)

		leadHandler := handler.NewLeadHandler(services.Leads())
		LeadRouter(v1.Group("/leads"), leadHandler)

		activityHandler := handler.NewActivityHandler(services.Activities())
		ActivityRouter(v1.Group("/activities"), activityHandler)

		gridHandler := handler.NewGridHandler(services.Grids())
		GridRouter(v1.Group("/grids"), gridHandler)
	}
}
