package summarystore

import (
	"context"
	"slices"

	"github.com/dalemusser/driverdash/internal/domain/models"
)

// Static serves a fixed Dataset from memory. Each call returns fresh copies,
// so callers may not mutate what later callers see.
type Static struct {
	ds Dataset
}

// NewStatic returns a Provider over ds.
func NewStatic(ds Dataset) *Static {
	return &Static{ds: cloneDataset(ds)}
}

func (s *Static) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	return cloneOrEmpty(s.ds.Drivers), nil
}

func (s *Static) Partners(ctx context.Context) ([]models.PartnerSummary, error) {
	return cloneOrEmpty(s.ds.Partners), nil
}

func (s *Static) LowInventoryAlerts(ctx context.Context) ([]models.LowInventoryAlert, error) {
	return cloneOrEmpty(s.ds.Alerts), nil
}

func (s *Static) Overview(ctx context.Context) (models.DeliveryOverview, error) {
	o := s.ds.Overview
	o.TopDrivers = cloneOrEmpty(o.TopDrivers)
	return o, nil
}

// Ping always succeeds; there is nothing to reach.
func (s *Static) Ping(ctx context.Context) error { return nil }

func cloneDataset(ds Dataset) Dataset {
	out := Dataset{
		Drivers:  cloneOrEmpty(ds.Drivers),
		Partners: cloneOrEmpty(ds.Partners),
		Alerts:   cloneOrEmpty(ds.Alerts),
		Overview: ds.Overview,
	}
	out.Overview.TopDrivers = cloneOrEmpty(ds.Overview.TopDrivers)
	return out
}

// cloneOrEmpty copies in, returning an empty (non-nil) slice for nil input so
// JSON encodes [] rather than null.
func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}
