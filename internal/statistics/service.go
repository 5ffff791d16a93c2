package statistics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RepositoryPort defines the aggregate reads the service depends on.
type RepositoryPort interface {
	TotalShipments(ctx context.Context) (int64, error)
	ActiveCouriers(ctx context.Context) (int64, error)
	ShipmentsToday(ctx context.Context) (int64, error)
	CompletedToday(ctx context.Context) (int64, error)
}

// Summary groups the four independent dashboard counts.
type Summary struct {
	TotalShipments int64 `json:"totalShipments"`
	ActiveCouriers int64 `json:"activeCouriers"`
	ShipmentsToday int64 `json:"shipmentsToday"`
	CompletedToday int64 `json:"completedToday"`
}

// Service computes the dashboard summary.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Summarize runs the four counts concurrently. The counts carry no ordering
// dependency; any single failure fails the whole aggregation, partial
// results are never returned.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	var summary Summary
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.TotalShipments(ctx)
		summary.TotalShipments = total
		return err
	})
	g.Go(func() error {
		total, err := s.repo.ActiveCouriers(ctx)
		summary.ActiveCouriers = total
		return err
	})
	g.Go(func() error {
		total, err := s.repo.ShipmentsToday(ctx)
		summary.ShipmentsToday = total
		return err
	})
	g.Go(func() error {
		total, err := s.repo.CompletedToday(ctx)
		summary.CompletedToday = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
