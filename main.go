package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "datalab-service/docs"
	"datalab-service/internal/database"
	"datalab-service/internal/handlers"
)

// @title DataLab Pivot Service API
// @version 1.0
// @description Cross-tabulation (pivot/unpivot) analytics over imported EAV rows.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	database.ConnectDatabase()

	router := gin.Default()

	router.GET("/health", handlers.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		pivotRoutes := v1.Group("/pivot")
		{
			pivotRoutes.POST("", handlers.BuildPivot)
			pivotRoutes.GET("/fields", handlers.GetPivotFields)
			pivotRoutes.GET("/filter-values", handlers.GetFilterValues)
		}
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on :%s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
