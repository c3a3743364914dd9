// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"net/netip"
	"time"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// ports, TLS, logging and request limits; everything below is specific to
// the dashboard.
type AppConfig struct {
	// DataSource selects the summary Provider: "static", "mongo" or "sqlite".
	DataSource string

	// MongoDB connection configuration (data_source=mongo)
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// SQLite configuration (data_source=sqlite)
	SQLitePath string // Database file, created if missing

	// SeedPlaceholderData fills an empty database with the built-in records.
	SeedPlaceholderData bool

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: driverdash-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Data source timeouts; zero keeps the built-in default.
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration

	// JSON API rate limiting, per client IP. A limit of 0 disables it.
	APIRateLimit  int
	APIRateWindow time.Duration

	// TrustedProxies may set X-Forwarded-For / X-Real-IP. Everyone else is
	// identified by the connection's remote address.
	TrustedProxies []netip.Prefix

	// Layout
	SiteName   string // Shown in page titles
	FooterHTML string // Replaces the default copyright line; sanitized before use
}
