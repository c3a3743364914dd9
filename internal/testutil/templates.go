package testutil

import (
	"testing"

	"github.com/dalemusser/driverdash/internal/app/resources"
	"github.com/dalemusser/driverdash/internal/app/system/ui"
	"go.uber.org/zap"
)

// BootTemplates compiles the shared layout plus every template set
// registered by imported feature packages, and makes the result the
// engine used by ui.Render.
func BootTemplates(t *testing.T) {
	t.Helper()
	resources.LoadSharedTemplates()
	if err := ui.Boot(false, zap.NewNop()); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
}
