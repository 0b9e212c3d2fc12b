package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripatlas/services"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "TripAtlas API",
		"providers": gin.H{
			"weather":   services.GetWeatherClient().Configured(),
			"flights":   services.GetFlightClient().Configured(),
			"narrative": services.GetAIClient().Configured(),
		},
	})
}
