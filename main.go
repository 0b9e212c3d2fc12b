package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripatlas/handlers"
	"tripatlas/logger"
	"tripatlas/middleware"
	"tripatlas/services"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		logger.InfoLogger.Info("No .env file found — using environment variables")
	}

	logger.InitLoggers()

	// Initialize provider clients. Geocoder must come before hotels:
	// hotel search depends on it.
	services.InitWeather()
	services.InitGeocoder()
	services.InitHotels()
	services.InitAI()
	services.InitFlights()

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/plan", handlers.PlanHandler)
		api.POST("/export", handlers.ExportHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.InfoLogger.Info("TripAtlas backend starting on port ", port)
	if err := r.Run(":" + port); err != nil {
		logger.ErrorLogger.Fatal("Failed to start server: ", err)
	}
}
