package routes

import (
	"fmt"
	"net/http"
	"time"

	"pawfect/config"
	"pawfect/handlers"
	"pawfect/middleware"
	"pawfect/utils"
	"pawfect/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// corsConfig builds the CORS policy from the configured origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

// RegisterPageRoutes registers the HTML page and its assets.
func RegisterPageRoutes(r gin.IRouter, hb *handlers.HandlerBundle) {
	r.GET("/", hb.IndexHandler)
	r.StaticFS("/static", http.FS(web.Static()))
}

// RegisterSearchRoutes registers the listing search API. The search itself
// always answers 200, so it is mounted outside the rate-limited group.
func RegisterSearchRoutes(r *gin.Engine, limited gin.IRouter, hb *handlers.HandlerBundle) {
	r.POST("/api/search", hb.SearchHandler)
	limited.GET("/api/search/options", hb.OptionsHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r gin.IRouter, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// NewRouter builds the engine with global middleware, templates and all routes.
func NewRouter(cfg config.Config, logger *zap.Logger, hb *handlers.HandlerBundle) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		return nil, fmt.Errorf("routes: invalid trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins())))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("routes: failed to parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	limited := r.Group("", middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	RegisterPageRoutes(limited, hb)
	RegisterSearchRoutes(r, limited, hb)
	RegisterHealthRoute(limited, hb)
	return r, nil
}
