package routes

import (
	"estimate_app/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEstimates = "/estimates"

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", h.ListEstimates)
		estimates.POST("", h.CreateEstimate)

		// Static segments are registered before the :id routes.
		estimates.POST("/calculate", h.CalculateEstimate)
		estimates.GET("/recent", h.RecentEstimates)
		estimates.GET("/stats", h.EstimateStats)
		estimates.GET("/export", h.ExportEstimates)

		estimates.GET("/:id", h.GetEstimate)
		estimates.PUT("/:id", h.UpdateEstimate)
		estimates.DELETE("/:id", h.DeleteEstimate)
		estimates.PATCH("/:id/status", h.UpdateEstimateStatus)
		estimates.POST("/:id/convert", h.ConvertEstimate)
		estimates.GET("/:id/print", h.PrintEstimate)
		estimates.GET("/:id/pdf", h.EstimatePDF)
	}
}
