// internal/app/features/analytics/routes.go
package analytics

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAnalytics)
	return r
}
