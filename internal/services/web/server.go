package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/welcomepath/internal/onboarding"
	"github.com/louisbranch/welcomepath/internal/platform/branding"
	"github.com/louisbranch/welcomepath/internal/platform/timeouts"
	"github.com/louisbranch/welcomepath/internal/services/web/app"
	module "github.com/louisbranch/welcomepath/internal/services/web/module"
	"github.com/louisbranch/welcomepath/internal/services/web/modules"
	"github.com/louisbranch/welcomepath/internal/services/web/modules/dashboard"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/httpx"
	"github.com/louisbranch/welcomepath/internal/services/web/platform/observability"
	"github.com/louisbranch/welcomepath/internal/services/web/static"
	"github.com/louisbranch/welcomepath/internal/services/web/transport/httpmux"
)

// Config defines the inputs for the web server.
type Config struct {
	// HTTPAddr is the listen address, e.g. "localhost:8080".
	HTTPAddr string
	// Snapshot is the onboarding data set rendered on every request.
	Snapshot onboarding.Snapshot
	// SeedFile, when set, is reread on every dashboard request.
	SeedFile string
	// Modules overrides the default module set.
	Modules []module.Module
	// Logger receives request log lines. Defaults to log.Default().
	Logger *log.Logger
}

// Server hosts the dashboard HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	if err := config.Snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("validate snapshot: %w", err)
	}
	mods := config.Modules
	if mods == nil {
		var source dashboard.SnapshotSource
		if seedFile := strings.TrimSpace(config.SeedFile); seedFile != "" {
			source = onboarding.FileSource{Path: seedFile}
		}
		mods = modules.DefaultModules(source)
	}
	composed, err := app.BuildRootHandler(app.Config{
		Dependencies: module.NewDependencies(branding.AppName, config.Snapshot.Clone()),
		Modules:      mods,
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS)
	httpmux.MountHealth(rootMux)
	httpmux.MountModules(rootMux, composed)

	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		observability.Instrument("web"),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web dashboard listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the listener immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
