// Package summarystore supplies the record lists shown by the admin pages.
//
// Pages never own their data. They ask a Provider, which may be the built-in
// placeholder set, a MongoDB database, or a SQLite file. Every Provider
// returns records in their stored order; callers must not reorder them.
package summarystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/driverdash/internal/domain/models"
	"go.uber.org/zap"
)

// Provider supplies the dashboard record sequences.
type Provider interface {
	Drivers(ctx context.Context) ([]models.DriverSummary, error)
	Partners(ctx context.Context) ([]models.PartnerSummary, error)
	LowInventoryAlerts(ctx context.Context) ([]models.LowInventoryAlert, error)
	Overview(ctx context.Context) (models.DeliveryOverview, error)

	// Ping reports whether the backing data source is reachable.
	Ping(ctx context.Context) error
}

// Seeder is implemented by providers whose records can be replaced.
type Seeder interface {
	Replace(ctx context.Context, ds Dataset) error
	IsEmpty(ctx context.Context) (bool, error)
}

// Dataset is a complete set of records for every page.
type Dataset struct {
	Drivers  []models.DriverSummary     `yaml:"drivers" json:"drivers"`
	Partners []models.PartnerSummary    `yaml:"partners" json:"partners"`
	Alerts   []models.LowInventoryAlert `yaml:"alerts" json:"alerts"`
	Overview models.DeliveryOverview    `yaml:"overview" json:"overview"`
}

// ErrInvalidDataset is returned when a dataset cannot be stored.
var ErrInvalidDataset = errors.New("invalid dataset")

// Validate checks that every record has its text fields present.
func (ds Dataset) Validate() error {
	for i, d := range ds.Drivers {
		if d.Name == "" {
			return fmt.Errorf("%w: driver %d has no name", ErrInvalidDataset, i)
		}
	}
	for i, p := range ds.Partners {
		if p.Name == "" {
			return fmt.Errorf("%w: partner %d has no name", ErrInvalidDataset, i)
		}
	}
	for i, a := range ds.Alerts {
		if a.Partner == "" || a.Item == "" {
			return fmt.Errorf("%w: alert %d needs partner and item", ErrInvalidDataset, i)
		}
	}
	for i, t := range ds.Overview.TopDrivers {
		if t.Name == "" {
			return fmt.Errorf("%w: top driver %d has no name", ErrInvalidDataset, i)
		}
	}
	return nil
}

// SeedIfEmpty stores ds when s holds no records yet. It reports whether
// anything was written.
func SeedIfEmpty(ctx context.Context, s Seeder, ds Dataset, logger *zap.Logger) (bool, error) {
	empty, err := s.IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check for existing records: %w", err)
	}
	if !empty {
		logger.Debug("summary data already present; skipping seed")
		return false, nil
	}
	if err := s.Replace(ctx, ds); err != nil {
		return false, fmt.Errorf("seed summary data: %w", err)
	}
	logger.Info("seeded summary data",
		zap.Int("drivers", len(ds.Drivers)),
		zap.Int("partners", len(ds.Partners)),
		zap.Int("alerts", len(ds.Alerts)))
	return true, nil
}
