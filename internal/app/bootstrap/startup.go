// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/driverdash/internal/app/resources"
	"github.com/dalemusser/driverdash/internal/app/system/htmlsanitize"
	"github.com/dalemusser/driverdash/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the data source
// is ready but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(siteSettings(appCfg))
	return nil
}

func siteSettings(appCfg AppConfig) viewdata.Settings {
	return viewdata.Settings{
		SiteName:   appCfg.SiteName,
		FooterHTML: htmlsanitize.SanitizeToHTML(appCfg.FooterHTML),
	}
}
