package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/bank_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/bank_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/SscSPs/bank_ledger_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with the global middleware chain and all routes.
//
// The first call also configures gin's process-wide binding package: JSON
// bodies carrying unknown fields are rejected and the notblank rule is
// registered. This affects every gin engine in the process.
func NewRouter(cfg *config.Config, logger *slog.Logger, services *portssvc.ServiceContainer) (*gin.Engine, error) {
	if err := configureBinding(); err != nil {
		return nil, fmt.Errorf("configure binding: %w", err)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))
	if cfg.EnableMetrics {
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.RateLimit(rateLimiter))

	RegisterRoutes(r, cfg, services)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if cfg.EnableMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	root := r.Group("/")
	registerAccountRoutes(root, services.Ledger)
	registerTransactionRoutes(root, services.Ledger)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if !cfg.EnableSwagger {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.ExposeHeaders = []string{"Location", middleware.RequestIDHeader}
	corsCfg.MaxAge = 12 * time.Hour
	return corsCfg
}

// parseIDParam reads a non-negative integer path parameter. Anything else
// cannot name an existing entity.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
