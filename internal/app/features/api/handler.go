// Package api serves the dashboard records as JSON for scripts and
// external tooling. Records are returned in provider order.
package api

import (
	"encoding/json"
	"net/http"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/dalemusser/driverdash/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the read-only JSON views of the dashboard data.
type Handler struct {
	Provider summarystore.Provider
	Log      *zap.Logger
}

// NewHandler returns an api Handler. logger receives provider failures;
// clients only see a generic error body.
func NewHandler(p summarystore.Provider, logger *zap.Logger) *Handler {
	return &Handler{
		Provider: p,
		Log:      logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// dashboardResponse mirrors the admin dashboard: the delivery overview
// plus record counts for each list.
type dashboardResponse struct {
	Overview     models.DeliveryOverview `json:"overview"`
	DriverCount  int                     `json:"driver_count"`
	PartnerCount int                     `json:"partner_count"`
	AlertCount   int                     `json:"alert_count"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "api dashboard")
	defer cancel()

	ds, err := summarystore.Snapshot(ctx, h.Provider)
	if err != nil {
		h.fail(w, "dashboard", err)
		return
	}
	h.write(w, dashboardResponse{
		Overview:     ds.Overview,
		DriverCount:  len(ds.Drivers),
		PartnerCount: len(ds.Partners),
		AlertCount:   len(ds.Alerts),
	})
}

// Drivers handles GET /api/admin/drivers.
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "api drivers")
	defer cancel()

	drivers, err := h.Provider.Drivers(ctx)
	if err != nil {
		h.fail(w, "drivers", err)
		return
	}
	h.write(w, nonNil(drivers))
}

// Partners handles GET /api/admin/partners.
func (h *Handler) Partners(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "api partners")
	defer cancel()

	partners, err := h.Provider.Partners(ctx)
	if err != nil {
		h.fail(w, "partners", err)
		return
	}
	h.write(w, nonNil(partners))
}

// Alerts handles GET /api/admin/alerts.
func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "api low inventory alerts")
	defer cancel()

	alerts, err := h.Provider.LowInventoryAlerts(ctx)
	if err != nil {
		h.fail(w, "low inventory alerts", err)
		return
	}
	h.write(w, nonNil(alerts))
}

func (h *Handler) write(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Warn("api: encode response", zap.Error(err))
	}
}

func (h *Handler) fail(w http.ResponseWriter, what string, err error) {
	h.Log.Error("api: load failed", zap.String("resource", what), zap.Error(err))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: "data source unavailable"})
}

// nonNil makes an empty list encode as [] rather than null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
