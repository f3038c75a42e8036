package handlers

import (
	"net/http"

	"pawfect/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health. The cache snapshot is included only
// once the cache has been checked at least once.
func HealthHandler(c *gin.Context) {
	body := gin.H{
		"status":  "ok",
		"message": "Hi, I'm Pawfect",
	}
	if health := utils.GetHealthStatus(); health.CacheEnabled {
		body["cache"] = health
	}
	c.JSON(http.StatusOK, body)
}
