package dashboard

import (
	"net/http"

	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	"github.com/louisbranch/welcomepath/internal/services/web/routepath"
)

// Module provides the onboarding dashboard routes.
type Module struct {
	source SnapshotSource
}

// New returns a dashboard module that renders the snapshot passed at mount time.
func New() Module {
	return Module{}
}

// NewWithSource returns a dashboard module backed by source.
func NewWithSource(source SnapshotSource) Module {
	return Module{source: source}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (m Module) Mount(deps module.Dependencies) (module.Mount, error) {
	source := m.source
	if source == nil {
		source = staticSource{snapshot: deps.Snapshot.Clone()}
	}
	mux := http.NewServeMux()
	h := newHandlers(newService(source), deps.Shell)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
