// @title ChoViet Marketplace API
// @version 1.0
// @description ChoViet Marketplace Backend API Documentation
// @host localhost:8080
// @BasePath /api
// @schemes http
package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/config"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/middleware"
	"github.com/ChoViet-Ecommerce/choviet-marketplace-backend/routes/store_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()

	// Redis connection (rate limiting)
	config.ConnectRedis()

	// Keep schema current
	config.AutoMigrate()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")
	api.Use(middleware.RateLimiter(100, time.Minute))

	store_routes.SetupProductRoutes(api)
	store_routes.SetupUserRoutes(api)
	log.Println("✅ Storefront routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
