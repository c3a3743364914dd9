package alerts_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/driverdash/internal/app/features/alerts"
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/domain/models"
	"github.com/dalemusser/driverdash/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func serve(t *testing.T, p summarystore.Provider) *testutil.ResponseRecorder {
	t.Helper()
	testutil.BootTemplates(t)
	h := alerts.NewHandler(p, zap.NewNop())
	rec := testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/admin/alerts"))
	return rec
}

func TestServeList_Placeholder(t *testing.T) {
	rec := serve(t, summarystore.NewPlaceholder())

	rec.AssertStatus(t, http.StatusOK)
	body := rec.Body.String()
	if got := testutil.Heading(t, body); got != "Low Inventory Alerts" {
		t.Errorf("heading: got %q, want %q", got, "Low Inventory Alerts")
	}
	rec.AssertContains(t, `<th scope="col">Partner</th><th scope="col">Item</th><th scope="col">Stock Left</th>`)

	got := testutil.TableBody(t, body)
	want := [][]string{
		{"Pharmacy 1", "Insulin", "3"},
		{"Clinic A", "Antibiotics", "5"},
		{"Partner X", "Vitamins", "2"},
		{"Pharmacy 2", "Painkillers", "4"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestServeList_ZeroAndNegativeStock(t *testing.T) {
	rec := serve(t, testutil.NewStubProvider(summarystore.Dataset{
		Alerts: []models.LowInventoryAlert{
			{Partner: "P", Item: "Gauze", Stock: 0},
			{Partner: "P", Item: "Saline", Stock: -2},
		},
	}))

	got := testutil.TableBody(t, rec.Body.String())
	want := [][]string{{"P", "Gauze", "0"}, {"P", "Saline", "-2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestServeList_ProviderError(t *testing.T) {
	rec := serve(t, testutil.NewFailingProvider(errors.New("down")))
	rec.AssertStatus(t, http.StatusServiceUnavailable)
}
