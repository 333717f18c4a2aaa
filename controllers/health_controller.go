package controllers

import (
	"net/http"

	"thai-kitchen/models"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Test godoc
// @Summary Connectivity test
// @Tags Health
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Router /test [get]
func Test(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Server and API are working!"})
}
