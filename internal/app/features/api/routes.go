package api

import "github.com/go-chi/chi/v5"

// Routes returns the JSON endpoints; the top-level router mounts them at
// /api/admin.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/dashboard", h.Dashboard)
	r.Get("/drivers", h.Drivers)
	r.Get("/partners", h.Partners)
	r.Get("/alerts", h.Alerts)
	return r
}
