// Package httpmux wires the shared root routes around module handlers.
package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/louisbranch/welcomepath/internal/services/web/platform/httpx"
	"github.com/louisbranch/welcomepath/internal/services/web/routepath"
)

// MountStatic wires the embedded asset tree under the static prefix.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, withStaticMime(staticHandler))
}

// MountHealth wires the liveness probe.
func MountHealth(rootMux *http.ServeMux) {
	if rootMux == nil {
		return
	}
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
}

// MountModules hands every other path to the composed module handler.
func MountModules(rootMux *http.ServeMux, modules http.Handler) {
	if rootMux == nil || modules == nil {
		return
	}
	rootMux.Handle(routepath.Root, modules)
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		next.ServeHTTP(w, r)
	})
}
