// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/driverdash/internal/app/system/ratelimit"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// Data sources accepted by data_source.
const (
	DataSourceStatic = "static"
	DataSourceMongo  = "mongo"
	DataSourceSQLite = "sqlite"
)

// appConfigKeys defines the configuration keys for the dashboard.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: data_source, mongo_uri, etc.
//   - Environment variables: DRIVERDASH_DATA_SOURCE, DRIVERDASH_MONGO_URI, etc.
//   - Command-line flags: --data_source, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "data_source", Default: DataSourceStatic, Desc: "Summary data source: 'static', 'mongo' or 'sqlite'"},
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "driverdash", Desc: "MongoDB database name"},
	{Name: "sqlite_path", Default: "./data/driverdash.db", Desc: "SQLite database file"},
	{Name: "seed_placeholder_data", Default: true, Desc: "Seed an empty database with the placeholder records"},
	{Name: "session_key", Default: "", Desc: "Session signing key (required in production; random per run in dev)"},
	{Name: "session_name", Default: "driverdash-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for health checks and connectivity pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single record reads"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list reads, schema setup and seeding"},
	{Name: "api_rate_limit", Default: 120, Desc: "Requests per client IP per api_rate_window on /api/admin (0 disables)"},
	{Name: "api_rate_window", Default: "1m", Desc: "API rate limit window (e.g., 1m, 30s)"},
	{Name: "trusted_proxies", Default: "", Desc: "Comma-separated proxy IPs/CIDRs whose X-Forwarded-For is trusted (blank trusts none)"},
	{Name: "site_name", Default: "DriverApp", Desc: "Site name shown in page titles"},
	{Name: "footer_html", Default: "", Desc: "Footer HTML replacing the default copyright line"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig merges with precedence:
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "DRIVERDASH", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	trusted, err := ratelimit.ParseTrustedProxies(appValues.String("trusted_proxies"))
	if err != nil {
		return nil, AppConfig{}, fmt.Errorf("invalid trusted_proxies: %w", err)
	}

	appCfg := AppConfig{
		DataSource:          strings.ToLower(strings.TrimSpace(appValues.String("data_source"))),
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),
		SQLitePath:          appValues.String("sqlite_path"),
		SeedPlaceholderData: appValues.Bool("seed_placeholder_data"),
		SessionKey:          appValues.String("session_key"),
		SessionName:         appValues.String("session_name"),
		SessionDomain:       appValues.String("session_domain"),
		TimeoutPing:         appValues.Duration("timeout_ping", timeouts.DefaultPing),
		TimeoutShort:        appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium:       appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		APIRateLimit:        appValues.Int("api_rate_limit"),
		APIRateWindow:       appValues.Duration("api_rate_window", time.Minute),
		TrustedProxies:      trusted,
		SiteName:            appValues.String("site_name"),
		FooterHTML:          appValues.String("footer_html"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.DataSource {
	case DataSourceStatic:
	case DataSourceMongo:
		if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
			logger.Error("invalid MongoDB URI", zap.Error(err))
			return fmt.Errorf("invalid MongoDB URI: %w", err)
		}
		if appCfg.MongoDatabase == "" {
			return fmt.Errorf("data_source=mongo requires mongo_database")
		}
	case DataSourceSQLite:
		if strings.TrimSpace(appCfg.SQLitePath) == "" {
			return fmt.Errorf("data_source=sqlite requires sqlite_path")
		}
	default:
		return fmt.Errorf("unknown data_source %q (want %s, %s or %s)",
			appCfg.DataSource, DataSourceStatic, DataSourceMongo, DataSourceSQLite)
	}

	if appCfg.TimeoutPing < 0 || appCfg.TimeoutShort < 0 || appCfg.TimeoutMedium < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	if appCfg.APIRateLimit < 0 {
		return fmt.Errorf("api_rate_limit must not be negative")
	}
	if appCfg.APIRateLimit > 0 && appCfg.APIRateWindow <= 0 {
		return fmt.Errorf("api_rate_window must be positive when api_rate_limit is set")
	}

	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == "" {
		return fmt.Errorf("session_key is required in production")
	}

	return nil
}
