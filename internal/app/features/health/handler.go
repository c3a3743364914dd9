package health

import (
	"encoding/json"
	"net/http"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Provider   summarystore.Provider
	DataSource string
	Log        *zap.Logger
}

// NewHandler constructs a health Handler. dataSource names the configured
// backend (static, mongo or sqlite) and is echoed in the response.
func NewHandler(p summarystore.Provider, dataSource string, logger *zap.Logger) *Handler {
	return &Handler{
		Provider:   p,
		DataSource: dataSource,
		Log:        logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status     string `json:"status"`
	DataSource string `json:"data_source,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "data_source":"mongo" }
//
// On data source failure: 503 and
//
//	{ "status":"error", "data_source":"mongo", "message":"Data source unavailable" }
//
// The underlying error is logged, never returned to the caller.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "ping data source")
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:     "ok",
		DataSource: h.DataSource,
	}

	if err := h.Provider.Ping(ctx); err != nil {
		h.Log.Error("health-check: data source ping failed",
			zap.String("data_source", h.DataSource), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Message = "Data source unavailable"
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
