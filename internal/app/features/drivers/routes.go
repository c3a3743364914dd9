// internal/app/features/drivers/routes.go
package drivers

import "github.com/go-chi/chi/v5"

// Routes wires the drivers list; the top-level router mounts it at
// /admin/drivers.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
