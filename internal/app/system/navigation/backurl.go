package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g. "/admin").
	// If empty, any safe local URL is allowed.
	AllowedPrefix string

	// Fallback is used when no acceptable return URL is present.
	Fallback string
}

// AdminBackURL keeps return targets inside the admin area.
var AdminBackURL = BackURLOptions{
	AllowedPrefix: DashboardPath,
	Fallback:      DashboardPath,
}

// SafeBackURL reads the "return" query or form value and accepts it only if
// it is a local URL under opts.AllowedPrefix. Anything else yields the
// fallback, so the value can never be used as an open redirect.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret == "" {
		return opts.Fallback
	}
	if opts.AllowedPrefix != "" && !underPrefix(ret, opts.AllowedPrefix) {
		return opts.Fallback
	}
	return ret
}

// underPrefix reports whether p is prefix itself or a path beneath it, so
// "/admin" accepts "/admin/drivers" but not "/administrator".
func underPrefix(p, prefix string) bool {
	if p == prefix {
		return true
	}
	return strings.HasPrefix(p, strings.TrimSuffix(prefix, "/")+"/") ||
		strings.HasPrefix(p, prefix+"?")
}
