// Package server assembles the procedure API: stores, services, handlers and
// the gin engine serving them.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"placehub/internal/config"
	"placehub/internal/microservices/http-api/handler"
	"placehub/internal/microservices/http-api/middleware"
	"placehub/internal/microservices/http-api/registry"
	"placehub/internal/microservices/http-api/repository"
	"placehub/internal/microservices/http-api/service"
	"placehub/internal/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the external resources the API runs on. DB, Redis, Blob and
// Limiter may be nil; the affected procedures degrade instead of failing startup.
type Deps struct {
	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB
	Redis   *redis.Client
	Blob    service.BlobStore
	Limiter *ratelimit.KeyedRateLimiter
}

// Handlers builds every procedure provider over the given dependencies.
func Handlers(deps Deps) (service.AuthService, []registry.Provider) {
	placeRepo := repository.NewPlaceRepository(deps.DB)

	authService := service.NewAuthService(
		repository.NewUserRepository(deps.DB),
		repository.NewRevokedTokenRepository(deps.Redis),
		deps.Config,
		deps.Logger,
	)

	providers := []registry.Provider{
		handler.NewAuthHandler(authService),
		handler.NewPlaceHandler(
			service.NewPlaceService(placeRepo, repository.NewPlaceImageRepository(deps.DB)),
			deps.Limiter,
		),
		handler.NewReviewHandler(service.NewReviewService(repository.NewReviewRepository(deps.DB))),
		handler.NewCategoryHandler(service.NewCategoryService(repository.NewCategoryRepository(deps.DB))),
		handler.NewFavoriteHandler(service.NewFavoriteService(repository.NewFavoriteRepository(deps.DB))),
		handler.NewSharedFavoriteHandler(
			service.NewSharedFavoriteService(repository.NewSharedFavoriteRepository(deps.DB)),
			deps.Limiter,
		),
		handler.NewNotificationHandler(service.NewNotificationService(repository.NewNotificationRepository(deps.DB))),
		handler.NewStatsHandler(service.NewStatsService(placeRepo)),
		handler.NewUploadHandler(service.NewUploadService(deps.Blob, deps.Config.UploadMaxBytes, deps.Logger)),
	}
	return authService, providers
}

// NewRouter returns the gin engine serving /api/rpc, /check-conn and,
// when enabled, /metrics.
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	registry.RegisterValidators()

	r := gin.New()
	// ClientIP keys the view limiter, so forwarded headers count only from known proxies
	if err := r.SetTrustedProxies(deps.Config.TrustedProxies); err != nil {
		deps.Logger.Warn("invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())

	authService, providers := Handlers(deps)
	r.Use(middleware.Identify(authService))

	r.GET("/check-conn", checkConn(deps.DB))
	if deps.Config.PrometheusEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	registry.Mount(r.Group(registry.BasePath), registry.Collect(providers...))
	return r
}

func checkConn(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "connected"
		switch {
		case db == nil:
			status = "not configured"
		default:
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
				status = "unreachable"
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "API is alive",
			"database": status,
		})
	}
}
