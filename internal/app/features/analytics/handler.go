// internal/app/features/analytics/handler.go
package analytics

import (
	"net/http"

	uierrors "github.com/dalemusser/driverdash/internal/app/features/errors"
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"github.com/dalemusser/driverdash/internal/app/system/viewdata"
	"go.uber.org/zap"
)

var (
	metricColumns    = []string{"Metric", "Value"}
	topDriverColumns = []string{"Name", "Deliveries", "On Time %", "Avg Delivery Time"}
)

// Handler serves the delivery analytics page.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler creates an analytics Handler reading from p.
func NewHandler(p summarystore.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		Provider: p,
		Log:      logger,
	}
}

type analyticsData struct {
	viewdata.BaseVM
	Metrics         ui.Table
	TopDrivers      ui.Table
	TopDriversLabel string
}

// ServeAnalytics handles GET /admin/analytics.
func (h *Handler) ServeAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "load delivery overview")
	defer cancel()

	overview, err := h.Provider.Overview(ctx)
	if err != nil {
		h.Log.Error("load delivery overview failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, navigation.DashboardPath)
		return
	}

	metrics := ui.NewTable(metricColumns, overview.Metrics())
	metrics.Caption = "Delivery overview"

	top := ui.NewTable(topDriverColumns, overview.TopDrivers)

	ui.Render(w, r, "analytics", analyticsData{
		BaseVM:          viewdata.NewBaseVM(r, "Analytics"),
		Metrics:         metrics,
		TopDrivers:      top,
		TopDriversLabel: ui.CountLabel(top.Len(), "top driver", "top drivers"),
	})
}
