package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/antarin/antarin/internal/shared"
)

const uniqueViolation = "23505"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('admin', 'courier')),
		full_name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id BIGSERIAL PRIMARY KEY,
		tracking_number TEXT UNIQUE NOT NULL,
		sender TEXT NOT NULL,
		recipient TEXT NOT NULL,
		recipient_address TEXT NOT NULL,
		recipient_phone TEXT NOT NULL,
		courier_id BIGINT REFERENCES users(id),
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'processing', 'shipped', 'completed', 'cancelled')),
		weight_kg NUMERIC(8, 2),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the users and shipments tables when absent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("platform/db: ensure schema: %w", err)
		}
	}
	return nil
}

// SeedUser describes one default account inserted at bootstrap.
type SeedUser struct {
	Username string
	Password string
	Role     string
	FullName string
	Email    string
	Phone    string
}

// DefaultUsers are the accounts seeded on a fresh database.
var DefaultUsers = []SeedUser{
	{Username: "admin", Password: "admin123", Role: shared.RoleAdmin, FullName: "Administrator", Email: "admin@antarin.local", Phone: "081234567890"},
	{Username: "courier1", Password: "courier123", Role: shared.RoleCourier, FullName: "Kurir Satu", Email: "courier1@antarin.local", Phone: "081234567891"},
	{Username: "courier2", Password: "courier123", Role: shared.RoleCourier, FullName: "Kurir Dua", Email: "courier2@antarin.local", Phone: "081234567892"},
}

// Hasher abstracts the password hasher so db does not depend on auth.
type Hasher interface {
	Hash(secret string) (string, error)
}

// SeedDefaultUsers inserts the default accounts when missing. Concurrent
// bootstraps racing on the same username are tolerated via the unique
// constraint.
func SeedDefaultUsers(ctx context.Context, pool *pgxpool.Pool, hasher Hasher, logger *slog.Logger) error {
	for _, seed := range DefaultUsers {
		err := WithTx(ctx, pool, func(tx pgx.Tx) error {
			var existing int64
			err := tx.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, seed.Username).Scan(&existing)
			if err == nil {
				return nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return err
			}
			digest, err := hasher.Hash(seed.Password)
			if err != nil {
				return err
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO users (username, password_hash, role, full_name, email, phone)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				seed.Username, digest, seed.Role, seed.FullName, seed.Email, seed.Phone,
			)
			if err != nil {
				return err
			}
			if logger != nil {
				logger.Info("default user created",
					slog.String("username", seed.Username),
					slog.String("role", seed.Role))
			}
			return nil
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				continue
			}
			return fmt.Errorf("platform/db: seed %s: %w", seed.Username, err)
		}
	}
	return nil
}
