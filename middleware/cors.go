package middleware

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware is wide open unless ORIGIN_URL pins it down; the frontend
// is normally served from this same process.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}

	if origin := os.Getenv("ORIGIN_URL"); origin != "" {
		config.AllowOrigins = []string{origin}
		config.AllowCredentials = true
	} else {
		config.AllowAllOrigins = true
	}

	return cors.New(config)
}
