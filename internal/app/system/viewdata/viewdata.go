// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"sync"

	"github.com/dalemusser/driverdash/internal/app/system/auth"
	"github.com/dalemusser/driverdash/internal/app/system/navigation"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// DefaultSiteName is shown in the navbar and page titles when no site name
// is configured.
const DefaultSiteName = "DriverApp"

// DefaultFooter is the copyright line shown when no footer is configured.
const DefaultFooter = "© 2025 DriverApp. All rights reserved."

// Settings are the site-wide values every page shares. They are set once
// at startup.
type Settings struct {
	SiteName string
	// FooterHTML must already be sanitized.
	FooterHTML template.HTML
}

var (
	mu       sync.RWMutex
	settings = defaultSettings()
)

func defaultSettings() Settings {
	return Settings{
		SiteName:   DefaultSiteName,
		FooterHTML: template.HTML(template.HTMLEscapeString(DefaultFooter)),
	}
}

// Init replaces the site settings. Empty fields keep their defaults.
func Init(s Settings) {
	d := defaultSettings()
	if s.SiteName == "" {
		s.SiteName = d.SiteName
	}
	if s.FooterHTML == "" {
		s.FooterHTML = d.FooterHTML
	}
	mu.Lock()
	settings = s
	mu.Unlock()
}

// Reset restores the default settings. Useful for testing.
func Reset() {
	mu.Lock()
	settings = defaultSettings()
	mu.Unlock()
}

// Current returns the site settings in effect.
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// BaseVM contains the layout fields every page needs. Embed it in
// feature view models:
//
//	type listData struct {
//	    viewdata.BaseVM
//	    Table ui.Table
//	}
type BaseVM struct {
	SiteName   string
	FooterHTML template.HTML

	Title       string
	CurrentPath string
	Nav         []navigation.Item

	// Flash is a one-time notice (e.g. after signing out).
	Flash string
}

// NewBaseVM builds the layout fields for r.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := Current()
	cur := httpnav.CurrentPath(r)
	return BaseVM{
		SiteName:    s.SiteName,
		FooterHTML:  s.FooterHTML,
		Title:       title,
		CurrentPath: cur,
		Nav:         navigation.Items(cur),
		Flash:       auth.Flash(r),
	}
}
