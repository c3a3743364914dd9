// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	alertsfeature "github.com/dalemusser/driverdash/internal/app/features/alerts"
	analyticsfeature "github.com/dalemusser/driverdash/internal/app/features/analytics"
	apifeature "github.com/dalemusser/driverdash/internal/app/features/api"
	dashboardfeature "github.com/dalemusser/driverdash/internal/app/features/dashboard"
	driversfeature "github.com/dalemusser/driverdash/internal/app/features/drivers"
	errorsfeature "github.com/dalemusser/driverdash/internal/app/features/errors"
	healthfeature "github.com/dalemusser/driverdash/internal/app/features/health"
	logoutfeature "github.com/dalemusser/driverdash/internal/app/features/logout"
	partnersfeature "github.com/dalemusser/driverdash/internal/app/features/partners"
	"github.com/dalemusser/driverdash/internal/app/system/auth"
	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"github.com/dalemusser/driverdash/internal/app/system/ratelimit"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const sessionMaxAge = 24 * time.Hour

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It creates the session manager, boots the
// template engine and mounts every feature router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"

	key := appCfg.SessionKey
	if key == "" {
		logger.Warn("session_key not set; using a random key for this run")
		key = auth.GenerateDevKey()
	}
	sessionMgr, err := auth.NewSessionManager(key, appCfg.SessionName, appCfg.SessionDomain, sessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	if err := ui.Boot(coreCfg.Env == "dev", logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}

	var apiLimit func(http.Handler) http.Handler
	if appCfg.APIRateLimit > 0 {
		apiLimit = ratelimit.Middleware(ratelimit.Config{
			Limit:          appCfg.APIRateLimit,
			Window:         appCfg.APIRateWindow,
			TrustedProxies: appCfg.TrustedProxies,
		}, logger)
		logger.Info("API rate limiting enabled",
			zap.Int("limit", appCfg.APIRateLimit),
			zap.Duration("window", appCfg.APIRateWindow),
			zap.Int("trusted_proxies", len(appCfg.TrustedProxies)))
	}

	return newRouter(deps, sessionMgr, apiLimit, logger), nil
}

// newRouter mounts the feature routers. It expects templates to be booted.
// A nil apiLimit leaves the JSON API unthrottled.
func newRouter(deps DBDeps, sessionMgr *auth.SessionManager, apiLimit func(http.Handler) http.Handler, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Pops the "signed out" notice, if any, for viewdata.NewBaseVM.
	r.Use(sessionMgr.LoadFlash)

	// Unknown routes render inside the layout. Set before mounting so
	// subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Summaries, deps.DataSource, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, navigation.DashboardPath, http.StatusSeeOther)
	})

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	r.Route(navigation.DashboardPath, func(ar chi.Router) {
		ar.Mount("/", dashboardfeature.Routes(dashboardfeature.NewHandler(deps.Summaries, logger)))
		ar.Mount("/drivers", driversfeature.Routes(driversfeature.NewHandler(deps.Summaries, logger)))
		ar.Mount("/analytics", analyticsfeature.Routes(analyticsfeature.NewHandler(deps.Summaries, logger)))
		ar.Mount("/partners", partnersfeature.Routes(partnersfeature.NewHandler(deps.Summaries, logger)))
		ar.Mount("/alerts", alertsfeature.Routes(alertsfeature.NewHandler(deps.Summaries, logger)))
	})

	// JSON views of the same records
	apiHandler := apifeature.NewHandler(deps.Summaries, logger)
	r.Route("/api/admin", func(api chi.Router) {
		if apiLimit != nil {
			api.Use(apiLimit)
		}
		api.Mount("/", apifeature.Routes(apiHandler))
	})

	return r
}
