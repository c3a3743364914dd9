package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/driverdash/internal/app/features/api"
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/domain/models"
	"github.com/dalemusser/driverdash/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func get(t *testing.T, p summarystore.Provider, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := api.Routes(api.NewHandler(p, zap.NewNop()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return rec
}

func TestDrivers_ProviderOrder(t *testing.T) {
	rec := get(t, summarystore.NewPlaceholder(), "/drivers")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}

	var got []models.DriverSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(summarystore.PlaceholderDataset().Drivers, got); diff != "" {
		t.Errorf("drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestPartnersAndAlerts(t *testing.T) {
	ds := summarystore.PlaceholderDataset()

	var partners []models.PartnerSummary
	rec := get(t, summarystore.NewPlaceholder(), "/partners")
	if err := json.Unmarshal(rec.Body.Bytes(), &partners); err != nil {
		t.Fatalf("decode partners: %v", err)
	}
	if diff := cmp.Diff(ds.Partners, partners); diff != "" {
		t.Errorf("partners mismatch (-want +got):\n%s", diff)
	}

	var alerts []models.LowInventoryAlert
	rec = get(t, summarystore.NewPlaceholder(), "/alerts")
	if err := json.Unmarshal(rec.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("decode alerts: %v", err)
	}
	if diff := cmp.Diff(ds.Alerts, alerts); diff != "" {
		t.Errorf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestDrivers_EmptyIsArray(t *testing.T) {
	rec := get(t, testutil.NewStubProvider(summarystore.Dataset{}), "/drivers")
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body: got %q, want %q", got, "[]\n")
	}
}

func TestDashboard(t *testing.T) {
	rec := get(t, summarystore.NewPlaceholder(), "/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Overview     models.DeliveryOverview `json:"overview"`
		DriverCount  int                     `json:"driver_count"`
		PartnerCount int                     `json:"partner_count"`
		AlertCount   int                     `json:"alert_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.DriverCount != 6 || body.PartnerCount != 6 || body.AlertCount != 4 {
		t.Errorf("counts: got %d/%d/%d, want 6/6/4", body.DriverCount, body.PartnerCount, body.AlertCount)
	}
	if body.Overview.TotalDeliveries != 122 {
		t.Errorf("total_deliveries: got %d, want 122", body.Overview.TotalDeliveries)
	}
	if len(body.Overview.TopDrivers) != 3 {
		t.Errorf("top_drivers: got %d, want 3", len(body.Overview.TopDrivers))
	}
}

func TestProviderError(t *testing.T) {
	for _, path := range []string{"/dashboard", "/drivers", "/partners", "/alerts"} {
		rec := get(t, testutil.NewFailingProvider(errors.New("dial tcp: refused")), path)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s status: got %d, want %d", path, rec.Code, http.StatusServiceUnavailable)
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s decode: %v", path, err)
		}
		if body.Error == "" {
			t.Errorf("%s: expected error message", path)
		}
	}
}
