package summarystore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Snapshot reads every record sequence from p concurrently. The first
// failure cancels the remaining reads and is returned.
func Snapshot(ctx context.Context, p Provider) (Dataset, error) {
	var ds Dataset
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		if ds.Drivers, err = p.Drivers(egCtx); err != nil {
			return fmt.Errorf("drivers: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if ds.Partners, err = p.Partners(egCtx); err != nil {
			return fmt.Errorf("partners: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if ds.Alerts, err = p.LowInventoryAlerts(egCtx); err != nil {
			return fmt.Errorf("low inventory alerts: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if ds.Overview, err = p.Overview(egCtx); err != nil {
			return fmt.Errorf("overview: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}
