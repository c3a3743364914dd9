// internal/app/features/alerts/routes.go
package alerts

import "github.com/go-chi/chi/v5"

// Routes wires the low inventory alerts list; the top-level router mounts it at
// /admin/alerts.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
