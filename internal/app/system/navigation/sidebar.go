// Package navigation defines the admin sidebar and safe in-app redirects.
package navigation

import "strings"

// Paths of the admin pages. An external router maps these to handlers.
const (
	DashboardPath = "/admin"
	DriversPath   = "/admin/drivers"
	AnalyticsPath = "/admin/analytics"
	PartnersPath  = "/admin/partners"
	AlertsPath    = "/admin/alerts"
)

// Link is one sidebar entry.
type Link struct {
	Label string
	Href  string
}

// Item is a Link as rendered for a particular request.
type Item struct {
	Link
	Active bool
}

// sidebar is fixed; pages and data never change it.
var sidebar = [...]Link{
	{Label: "Dashboard", Href: DashboardPath},
	{Label: "Drivers", Href: DriversPath},
	{Label: "Analytics", Href: AnalyticsPath},
	{Label: "Partners", Href: PartnersPath},
	{Label: "Alerts", Href: AlertsPath},
}

// Items returns the sidebar links with the one matching currentPath marked
// active. At most one item is active.
func Items(currentPath string) []Item {
	cur := normalize(currentPath)
	out := make([]Item, len(sidebar))
	for i, l := range sidebar {
		out[i] = Item{Link: l, Active: l.Href == cur}
	}
	return out
}

// normalize strips the query string and any trailing slash (except for "/").
func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}
