package web

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("WELCOMEPATH_WEB_HTTP_ADDR", "")
	t.Setenv("WELCOMEPATH_WEB_SEED_FILE", "")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.SeedFile != "" {
		t.Fatalf("SeedFile = %q, want empty", cfg.SeedFile)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("WELCOMEPATH_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("WELCOMEPATH_WEB_SEED_FILE", "/tmp/seed.json")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if cfg.SeedFile != "/tmp/seed.json" {
		t.Fatalf("SeedFile = %q, want %q", cfg.SeedFile, "/tmp/seed.json")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WELCOMEPATH_WEB_HTTP_ADDR", "0.0.0.0:9000")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-seed-file", " seed.json "})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.SeedFile != "seed.json" {
		t.Fatalf("SeedFile = %q, want %q", cfg.SeedFile, "seed.json")
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	t.Setenv("WELCOMEPATH_WEB_HTTP_ADDR", "")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	if _, err := ParseConfig(fs, []string{"-game-addr", "x"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}

func TestRunFailsOnInvalidSeedFile(t *testing.T) {
	t.Setenv("WELCOMEPATH_OTEL_ENABLED", "false")

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`{"user":{"name":"","initials":""}}`), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	err := Run(context.Background(), Config{HTTPAddr: "127.0.0.1:0", SeedFile: path})
	if err == nil || !strings.Contains(err.Error(), "load onboarding snapshot") {
		t.Fatalf("Run() error = %v, want snapshot load failure", err)
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	t.Setenv("WELCOMEPATH_OTEL_ENABLED", "false")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, Config{HTTPAddr: "127.0.0.1:0"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
