// internal/app/features/drivers/handler.go
package drivers

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

// Columns of the drivers table, in record field order.
var columns = []string{"Name", "Deliveries"}

// Handler serves the drivers summary page.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler returns a drivers Handler reading from p.
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

// ServeList handles GET /admin/drivers.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load drivers")
	defer cancel()

	drivers, err := h.Provider.Drivers(ctx)
	if err != nil {
		h.Log.Error("load drivers failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, navigation.DashboardPath)
		return
	}

	h.Log.Debug("serving drivers", zap.Int("count", len(drivers)))
	ui.Render(w, r, "driver_summary", listData{
		BaseVM: viewdata.NewBaseVM(r, "All Drivers"),
		Table:  ui.NewTable(columns, drivers),
	})
}
