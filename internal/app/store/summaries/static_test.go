package summarystore_test

import (
	"context"
	"testing"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestPlaceholder_Drivers(t *testing.T) {
	p := summarystore.NewPlaceholder()
	got, err := p.Drivers(context.Background())
	if err != nil {
		t.Fatalf("Drivers: %v", err)
	}
	want := []models.DriverSummary{
		{Name: "Driver A", Deliveries: 52},
		{Name: "Driver B", Deliveries: 47},
		{Name: "Driver C", Deliveries: 39},
		{Name: "Driver D", Deliveries: 33},
		{Name: "Driver E", Deliveries: 28},
		{Name: "Driver F", Deliveries: 22},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestPlaceholder_Counts(t *testing.T) {
	ctx := context.Background()
	p := summarystore.NewPlaceholder()

	partners, _ := p.Partners(ctx)
	if len(partners) != 6 {
		t.Errorf("partners: got %d, want 6", len(partners))
	}
	alerts, _ := p.LowInventoryAlerts(ctx)
	if len(alerts) != 4 {
		t.Errorf("alerts: got %d, want 4", len(alerts))
	}
	o, _ := p.Overview(ctx)
	if o.TotalDeliveries != 122 {
		t.Errorf("TotalDeliveries: got %d, want 122", o.TotalDeliveries)
	}
	if len(o.TopDrivers) != 3 {
		t.Errorf("TopDrivers: got %d, want 3", len(o.TopDrivers))
	}
}

func TestStatic_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	p := summarystore.NewPlaceholder()

	first, _ := p.Drivers(ctx)
	first[0].Name = "mutated"

	second, _ := p.Drivers(ctx)
	if second[0].Name != "Driver A" {
		t.Errorf("second call saw mutation: got %q, want %q", second[0].Name, "Driver A")
	}
}

func TestStatic_InputNotAliased(t *testing.T) {
	ds := summarystore.Dataset{Drivers: []models.DriverSummary{{Name: "Driver A", Deliveries: 1}}}
	p := summarystore.NewStatic(ds)
	ds.Drivers[0].Name = "changed"

	got, _ := p.Drivers(context.Background())
	if got[0].Name != "Driver A" {
		t.Errorf("provider aliased input: got %q", got[0].Name)
	}
}

func TestStatic_EmptyListsAreNonNil(t *testing.T) {
	ctx := context.Background()
	p := summarystore.NewStatic(summarystore.Dataset{})

	drivers, err := p.Drivers(ctx)
	if err != nil {
		t.Fatalf("Drivers: %v", err)
	}
	if drivers == nil || len(drivers) != 0 {
		t.Errorf("Drivers: got %#v, want empty non-nil slice", drivers)
	}
	o, _ := p.Overview(ctx)
	if o.TopDrivers == nil {
		t.Error("TopDrivers: got nil, want empty slice")
	}
	if err := p.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestDataset_Validate(t *testing.T) {
	if err := summarystore.PlaceholderDataset().Validate(); err != nil {
		t.Errorf("placeholder dataset invalid: %v", err)
	}

	bad := []summarystore.Dataset{
		{Drivers: []models.DriverSummary{{Deliveries: 3}}},
		{Partners: []models.PartnerSummary{{Orders: 3}}},
		{Alerts: []models.LowInventoryAlert{{Partner: "P", Stock: 1}}},
		{Overview: models.DeliveryOverview{TopDrivers: []models.TopDriver{{TotalDeliveries: 1}}}},
	}
	for i, ds := range bad {
		if err := ds.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
