// internal/app/features/partners/routes.go
package partners

import "github.com/go-chi/chi/v5"

// Routes wires the partners list; the top-level router mounts it at
// /admin/partners.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
