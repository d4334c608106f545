package routes

import (
	"net/http"

	response "estimate_app/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", ping)
}

// ping godoc
// @Summary  Liveness
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.MessageResponse
// @Router   /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: "pong"})
}
