// internal/app/features/partners/handler.go
package partners

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

// Columns of the partners table, in record field order.
var columns = []string{"Name", "Total Orders"}

// Handler serves the partner order totals page.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler constructs a partners Handler.
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

// ServeList handles GET /admin/partners.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load partners")
	defer cancel()

	partners, err := h.Provider.Partners(ctx)
	if err != nil {
		h.Log.Error("load partners failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, navigation.DashboardPath)
		return
	}

	h.Log.Debug("serving partners", zap.Int("count", len(partners)))
	ui.Render(w, r, "partner_summary", listData{
		BaseVM: viewdata.NewBaseVM(r, "All Partners"),
		Table:  ui.NewTable(columns, partners),
	})
}
