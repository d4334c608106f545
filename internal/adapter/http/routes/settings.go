package routes

import (
	"estimate_app/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSettings = "/settings"

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.GetSettings)
		settings.PUT("/company-profile", h.UpdateCompanyProfile)
		settings.PUT("/default-terms", h.UpdateDefaultTerms)
	}
}
