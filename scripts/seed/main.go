// Command seed bootstraps the schema and default accounts without starting
// the API server. Useful for fresh environments and CI databases.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/antarin/antarin/internal/app"
	"github.com/antarin/antarin/internal/auth"
	"github.com/antarin/antarin/internal/platform/db"
)

func main() {
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.SeedDefaultUsers(ctx, pool, auth.NewHasher(cfg.BcryptCost), logger); err != nil {
		logger.Error("seed default users", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("seed complete")
}
