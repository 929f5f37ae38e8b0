package app

import (
	"net/http"

	"github.com/louisbranch/welcomepath/internal/platform/branding"
)

// BuildRootHandler composes a root mux using the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	deps := cfg.Dependencies
	if deps.Shell.AppName == "" {
		deps.Shell.AppName = branding.AppName
	}
	return Composer{}.Compose(ComposeInput{
		Dependencies: deps,
		Modules:      cfg.Modules,
	})
}
