// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"github.com/dalemusser/driverdash/internal/app/system/viewdata"
)

const errorPage = "error_page"

// RenderNotFound shows a "page not found" page with a link back to the
// dashboard.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: "The page you asked for does not exist.",
		BackURL: navigation.DashboardPath,
	}
	ui.RenderStatus(w, r, http.StatusNotFound, errorPage, data)
}

// RenderUnavailable shows a 503 page when the data source cannot supply a
// page's records. The underlying error is logged by the caller and never
// shown to the browser. If backURL is empty, it resolves a safe back URL
// inside the admin area.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = navigation.SafeBackURL(r, navigation.AdminBackURL)
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Data unavailable"),
		Message: "The dashboard data source is unavailable. Please try again shortly.",
		BackURL: backURL,
	}
	ui.RenderStatus(w, r, http.StatusServiceUnavailable, errorPage, data)
}
