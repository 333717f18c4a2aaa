package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"thai-kitchen/config"
	"thai-kitchen/controllers"
	"thai-kitchen/middleware"
	"thai-kitchen/models"
	"thai-kitchen/repositories"
	"thai-kitchen/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Setup(router *gin.Engine, db *pgxpool.Pool, cfg *config.Config) {
	orderSvc := services.NewOrderService(db, cfg.Defaults)
	authSvc := services.NewAuthService(repositories.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry)

	orderCtrl := controllers.NewOrderController(orderSvc, repositories.NewOrderRepository(db))
	menuCtrl := controllers.NewMenuController(repositories.NewMenuRepository(db))
	authCtrl := controllers.NewAuthController(authSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", controllers.Health)
		api.GET("/test", controllers.Test)
		api.GET("/menu", menuCtrl.GetMenu)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/active", orderCtrl.GetActiveOrders)

		admin := api.Group("/admin")
		{
			admin.POST("/register", authCtrl.Register)
			admin.POST("/login", authCtrl.Login)
			admin.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret), authCtrl.Profile)
		}
	}

	setupFrontend(router, cfg.FrontendDir)
}

// setupFrontend serves the static bundle and falls back to index.html for
// any unmatched non-API path, so client-side routing keeps working.
func setupFrontend(router *gin.Engine, frontendDir string) {
	indexFile := filepath.Join(frontendDir, "index.html")

	router.GET("/", func(c *gin.Context) {
		c.File(indexFile)
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
			return
		}

		asset := filepath.Join(frontendDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(asset); err == nil && !info.IsDir() {
			c.File(asset)
			return
		}

		c.File(indexFile)
	})
}
