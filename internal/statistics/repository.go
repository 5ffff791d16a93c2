package statistics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides read-only aggregate counts over the shipment and
// user stores.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// TotalShipments counts every shipment record.
func (r *Repository) TotalShipments(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM shipments`)
}

// ActiveCouriers counts courier accounts eligible to log in.
func (r *Repository) ActiveCouriers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = 'courier' AND status = 'active'`)
}

// ShipmentsToday counts shipments created on the store's current calendar day.
func (r *Repository) ShipmentsToday(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM shipments WHERE created_at::date = CURRENT_DATE`)
}

// CompletedToday counts shipments completed on the store's current calendar day.
func (r *Repository) CompletedToday(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM shipments WHERE status = 'completed' AND updated_at::date = CURRENT_DATE`)
}
