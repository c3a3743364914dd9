package testutil

import (
	"context"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/domain/models"
)

// StubProvider serves a fixed dataset, or fails every call with Err.
type StubProvider struct {
	Data summarystore.Dataset
	Err  error

	// Block makes every call wait for its context to end and return
	// the context's error, like a data source that never answers.
	Block bool
}

// NewStubProvider serves ds.
func NewStubProvider(ds summarystore.Dataset) *StubProvider {
	return &StubProvider{Data: ds}
}

// NewFailingProvider fails every call with err.
func NewFailingProvider(err error) *StubProvider {
	return &StubProvider{Err: err}
}

// NewBlockingProvider never answers before the caller's deadline.
func NewBlockingProvider() *StubProvider {
	return &StubProvider{Block: true}
}

func (p *StubProvider) result(ctx context.Context) error {
	if p.Block {
		<-ctx.Done()
		return ctx.Err()
	}
	return p.Err
}

func (p *StubProvider) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	if err := p.result(ctx); err != nil {
		return nil, err
	}
	return p.Data.Drivers, nil
}

func (p *StubProvider) Partners(ctx context.Context) ([]models.PartnerSummary, error) {
	if err := p.result(ctx); err != nil {
		return nil, err
	}
	return p.Data.Partners, nil
}

func (p *StubProvider) LowInventoryAlerts(ctx context.Context) ([]models.LowInventoryAlert, error) {
	if err := p.result(ctx); err != nil {
		return nil, err
	}
	return p.Data.Alerts, nil
}

func (p *StubProvider) Overview(ctx context.Context) (models.DeliveryOverview, error) {
	if err := p.result(ctx); err != nil {
		return models.DeliveryOverview{}, err
	}
	return p.Data.Overview, nil
}

func (p *StubProvider) Ping(ctx context.Context) error {
	return p.result(ctx)
}

var _ summarystore.Provider = (*StubProvider)(nil)
