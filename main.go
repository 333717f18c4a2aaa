package main

import (
	"log"
	"os"
	"path/filepath"

	"thai-kitchen/config"
	_ "thai-kitchen/docs"
	"thai-kitchen/middleware"
	"thai-kitchen/routes"

	"github.com/gin-gonic/gin"
)

// @title Thai Kitchen API
// @version 1.0
// @description Order-taking backend: menu, order submission, active orders, staff accounts.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if _, err := os.Stat(filepath.Join(cfg.FrontendDir, "index.html")); err != nil {
		log.Fatalf("Frontend folder not found at %s: %v", cfg.FrontendDir, err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.Setup(router, db, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
