// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/driverdash/internal/app/system/auth"
	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles POST /logout (the navbar button) and GET /logout.
// It expires the session cookie, leaves a one-time "signed out" notice and
// returns to the dashboard, or to a ?return= target inside /admin.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.Destroy(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}
	if err := h.SessionMgr.AddFlash(w, r, auth.SignedOutMessage); err != nil {
		h.Log.Warn("logout: add flash", zap.Error(err))
	}

	dest := navigation.SafeBackURL(r, navigation.AdminBackURL)
	h.Log.Debug("session cleared", zap.String("redirect", dest))

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}
