// Package web parses web dashboard flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/welcomepath/internal/onboarding"
	entrypoint "github.com/louisbranch/welcomepath/internal/platform/cmd"
	"github.com/louisbranch/welcomepath/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr string `env:"WELCOMEPATH_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	SeedFile string `env:"WELCOMEPATH_WEB_SEED_FILE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SeedFile, "seed-file", cfg.SeedFile, "Optional JSON onboarding snapshot; built-in mock data when empty")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr)
	cfg.SeedFile = strings.TrimSpace(cfg.SeedFile)
	return cfg, nil
}

// Run starts the web dashboard server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		snapshot, err := onboarding.Resolve(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("load onboarding snapshot: %w", err)
		}
		if cfg.SeedFile != "" {
			log.Printf("onboarding snapshot loaded from %s", cfg.SeedFile)
		}
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Snapshot: snapshot,
			SeedFile: cfg.SeedFile,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
