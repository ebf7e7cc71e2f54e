package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"net/http"
	"slices"
	"starwars-api/admin"
	"starwars-api/config"
	"time"
)

// SetupRouter builds the gin engine with the public API, the same API under
// /api, and the admin console under /admin.
func SetupRouter(gdb *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), RequestID(), Recovery())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	h := NewHandler(gdb)
	h.Register(r)
	h.Register(r.Group("/api"))

	admin.NewConsole(gdb, admin.DefaultRegistry()).Register(r.Group("/admin"))

	r.GET("/", sitemap(r))
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// sitemap lists every registered endpoint.
func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		endpoints := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			endpoints = append(endpoints, gin.H{"method": rt.Method, "path": rt.Path})
		}
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}
