package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Skotchmaster/order_management/internal/metrics"
	"github.com/Skotchmaster/order_management/internal/repo"
	"github.com/Skotchmaster/order_management/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]transport.ProductResponse, error) {
	items, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]transport.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, transport.NewProductResponse(p))
	}
	metrics.ListedRowsTotal.WithLabelValues("product").Add(float64(len(out)))
	return out, nil
}

func (s *CatalogService) ListOrders(ctx context.Context) ([]transport.OrderResponse, error) {
	items, err := s.Repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]transport.OrderResponse, 0, len(items))
	for _, o := range items {
		out = append(out, transport.NewOrderResponse(o))
	}
	metrics.ListedRowsTotal.WithLabelValues("order").Add(float64(len(out)))
	return out, nil
}

func (s *CatalogService) Ready(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}

// Bootstrap brings the store into the fixture state. With reset the tables
// are dropped first; otherwise fixtures go only into an empty store.
func (s *CatalogService) Bootstrap(ctx context.Context, reset bool, l *slog.Logger) error {
	if reset {
		l.Warn("database_reset", "reason", "reset on start enabled, existing rows are dropped")
		if err := s.Repo.Reset(ctx); err != nil {
			return fmt.Errorf("reset database: %w", err)
		}
		metrics.FixtureLoadsTotal.WithLabelValues("reset").Inc()
		l.Info("database_seeded", "mode", "reset")
		return nil
	}

	seeded, err := s.Repo.EnsureSeeded(ctx)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	if seeded {
		metrics.FixtureLoadsTotal.WithLabelValues("empty").Inc()
		l.Info("database_seeded", "mode", "empty")
	} else {
		l.Info("database_seed_skipped", "reason", "store already has products")
	}
	return nil
}
