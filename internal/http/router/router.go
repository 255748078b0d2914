package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/config"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/handlers"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/http/middleware"
)

// SetupRouter собирает маршруты приложения.
// Каждая из двух точек входа диспетчеризует операции по query-параметру
// action, как в исходном API; preflight запросы обрабатывает CORS middleware.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	masterHandler *handlers.MasterHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod))
	{
		authGroup.GET("", authHandler.Dispatch)
		authGroup.POST("", authHandler.Dispatch)
	}

	api.GET("/masters", masterHandler.Dispatch)
	api.POST("/masters", masterHandler.Dispatch)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint не найден"})
	})

	return r
}
