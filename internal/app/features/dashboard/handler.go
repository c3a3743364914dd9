// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	_ "github.com/dalemusser/driverdash/internal/app/features/dashboard/views"
	uierrors "github.com/dalemusser/driverdash/internal/app/features/errors"
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"github.com/dalemusser/driverdash/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler renders the admin landing page with its summary cards.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler constructs a dashboard Handler. Every request reads one
// snapshot from p so the cards agree with each other.
func NewHandler(p summarystore.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		Provider: p,
		Log:      logger,
	}
}

type dashboardData struct {
	viewdata.BaseVM
	Cards []card
}

// ServeDashboard handles GET /admin.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "load dashboard snapshot")
	defer cancel()

	ds, err := summarystore.Snapshot(ctx, h.Provider)
	if err != nil {
		h.Log.Error("load dashboard snapshot failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "")
		return
	}

	data := dashboardData{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard"),
		Cards:  buildCards(ds),
	}

	h.Log.Debug("admin dashboard served", zap.Int("cards", len(data.Cards)))
	ui.Render(w, r, "admin_dashboard", data)
}
