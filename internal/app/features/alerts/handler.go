// internal/app/features/alerts/handler.go
package alerts

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

// Columns of the alerts table, in record field order.
var columns = []string{"Partner", "Item", "Stock Left"}

// Handler serves the low inventory alerts page.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler returns an alerts Handler backed by p.
func NewHandler(p summarystore.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		Provider: p,
		Log:      logger,
	}
}

type listData struct {
	viewdata.BaseVM
	Table ui.Table
}

// ServeList handles GET /admin/alerts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load low inventory alerts")
	defer cancel()

	alerts, err := h.Provider.LowInventoryAlerts(ctx)
	if err != nil {
		h.Log.Error("load low inventory alerts failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, navigation.DashboardPath)
		return
	}

	h.Log.Debug("serving low inventory alerts", zap.Int("count", len(alerts)))
	ui.Render(w, r, "low_inventory", listData{
		BaseVM: viewdata.NewBaseVM(r, "Low Inventory Alerts"),
		Table:  ui.NewTable(columns, alerts),
	})
}
