package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/antarin/antarin/internal/app"
	"github.com/antarin/antarin/internal/auth"
	"github.com/antarin/antarin/internal/observability"
	"github.com/antarin/antarin/internal/platform/db"
	"github.com/antarin/antarin/internal/statistics"
	"github.com/antarin/antarin/internal/users"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	if cfg.UsingInsecureSecret() {
		logger.Warn("JWT_SECRET is not set, using built-in placeholder; unsafe for production")
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	hasher := auth.NewHasher(cfg.BcryptCost)

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.SeedDefaults {
		if err := db.SeedDefaultUsers(ctx, pool, hasher, logger); err != nil {
			logger.Error("seed default users", slog.Any("error", err))
			os.Exit(1)
		}
	}

	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authMiddleware := auth.Middleware{Codec: codec, Logger: logger}

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, hasher)
	authHandler := auth.NewHandler(logger, authService, codec)

	usersRepo := users.NewRepository(pool)
	usersService := users.NewService(usersRepo, hasher)
	usersHandler := users.NewHandler(logger, usersService, authMiddleware)

	statsRepo := statistics.NewRepository(pool)
	statsService := statistics.NewService(statsRepo)
	statsHandler := statistics.NewHandler(logger, statsService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		AuthHandler:       authHandler,
		AuthMiddleware:    authMiddleware,
		UsersHandler:      usersHandler,
		StatisticsHandler: statsHandler,
		Metrics:           metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
