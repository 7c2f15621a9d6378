package main

import (
	"fmt"
	"log"
	"os"

	"solar-sizing/internal/api/handlers"
	"solar-sizing/internal/api/middleware"
	"solar-sizing/internal/weather"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; env vars win.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// One shared weather client; handlers are stateless otherwise.
	client := weather.NewClient()
	simulateHandler := handlers.NewSimulateHandler(client)
	adviseHandler := handlers.NewAdviseHandler(client)
	capacityHandler := handlers.NewCapacityHandler()
	sitesHandler := handlers.NewSitesHandler(client)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/advise", adviseHandler.RunAdvise)
		api.POST("/capacity", capacityHandler.EstimateCapacity)

		api.GET("/sites", sitesHandler.ListSites)
		api.GET("/geocode", sitesHandler.Geocode)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
