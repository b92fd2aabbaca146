package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/SscSPs/remittance_web/internal/adapters/backend"
	"github.com/SscSPs/remittance_web/internal/adapters/store/memory"
	"github.com/SscSPs/remittance_web/internal/adapters/store/pgsql"
	redisstore "github.com/SscSPs/remittance_web/internal/adapters/store/redis"
	"github.com/SscSPs/remittance_web/internal/core/ports"
	"github.com/SscSPs/remittance_web/internal/core/services"
	"github.com/SscSPs/remittance_web/internal/handlers"
	"github.com/SscSPs/remittance_web/internal/middleware"
	"github.com/SscSPs/remittance_web/internal/platform/config"
	"github.com/SscSPs/remittance_web/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Remittance Web API
// @version 1.0
// @description Front-end server for limit requests and cross-border remittances.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore, err := newStateStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize state store", slog.String("store", cfg.StateStore), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()
	logger.Info("State store ready", slog.String("store", cfg.StateStore))

	client := backend.NewClient(cfg.BackendBaseURL,
		backend.WithAPIKey(cfg.BackendAPIKey),
		backend.WithTimeout(cfg.BackendTimeout),
	)
	svcContainer := services.NewServiceContainer(cfg, client, store)

	ipLimiter, err := middleware.NewIPLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.FrontendBaseURL, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// Multipart bodies larger than this spill to temporary files.
	r.MaxMultipartMemory = 12 << 20

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcContainer, ipLimiter)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.BackendBaseURL))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newStateStore builds the configured StateStore and returns its cleanup function.
func newStateStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.StateStore, func(), error) {
	switch cfg.StateStore {
	case config.StateStoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client, cfg.StateTTL), func() { _ = client.Close() }, nil

	case config.StateStorePostgres:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pgsql.NewStore(pool, cfg.StateTTL), func() { database.ClosePgxPool(pool) }, nil

	default:
		return memory.NewStore(cfg.StateTTL), func() {}, nil
	}
}
