package analytics_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/driverdash/internal/app/features/analytics"
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func serve(t *testing.T, p summarystore.Provider) *testutil.ResponseRecorder {
	t.Helper()
	testutil.BootTemplates(t)
	h := analytics.NewHandler(p, zap.NewNop())
	rec := testutil.NewRecorder()
	h.ServeAnalytics(rec, testutil.NewRequest("GET", "/admin/analytics"))
	return rec
}

func TestServeAnalytics_Placeholder(t *testing.T) {
	rec := serve(t, summarystore.NewPlaceholder())
	rec.AssertStatus(t, http.StatusOK)

	tables := testutil.TableBodies(t, rec.Body.String())
	if len(tables) != 2 {
		t.Fatalf("tables: got %d, want 2", len(tables))
	}

	wantMetrics := [][]string{
		{"Total Deliveries", "122"},
		{"In Progress", "14"},
		{"Delivered Today", "27"},
		{"Overdue", "5"},
		{"Average ETA (min)", "35.7"},
		{"Average Delivery Duration (min)", "32.4"},
	}
	if diff := cmp.Diff(wantMetrics, tables[0]); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}

	wantTop := [][]string{
		{"Amanuel Berhane", "42", "90.5", "28.3"},
		{"Sofia Tesfaye", "35", "94.2", "26.1"},
		{"Henok Dawit", "28", "89.7", "31.6"},
	}
	if diff := cmp.Diff(wantTop, tables[1]); diff != "" {
		t.Errorf("top drivers mismatch (-want +got):\n%s", diff)
	}
	rec.AssertContains(t, "3 top drivers")
}

func TestServeAnalytics_NoTopDrivers(t *testing.T) {
	rec := serve(t, testutil.NewStubProvider(summarystore.Dataset{}))

	tables := testutil.TableBodies(t, rec.Body.String())
	if len(tables) != 2 {
		t.Fatalf("tables: got %d, want 2", len(tables))
	}
	if len(tables[1]) != 0 {
		t.Errorf("top drivers: got %d rows, want 0", len(tables[1]))
	}
	rec.AssertContains(t, "0 top drivers")
}

func TestServeAnalytics_ProviderError(t *testing.T) {
	rec := serve(t, testutil.NewFailingProvider(errors.New("boom")))
	rec.AssertStatus(t, http.StatusServiceUnavailable)
}
