// wardforge-server serves the forging rite over SSH, one independent rite
// per connection. Build:
//
//	go build -o wardforge-server ./cmd/server
//
// Usage:
//
//	./wardforge-server [--config wardforge.yaml] [--addr :2222] [--debug]
//
// Connect:
//
//	ssh -p 2222 <host>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wardforge/internal/archive"
	"wardforge/internal/config"
	"wardforge/internal/server"
)

func main() {
	cfgPath := flag.String("config", "", "Path to wardforge.yaml (optional)")
	addr := flag.String("addr", "", "Listen address, overriding config")
	debug := flag.Bool("debug", false, "Development logging")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *debug {
		cfg.Debug = true
	}

	log, err := buildLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	store := openArchive(cfg, log)
	if store != nil {
		defer store.Close()
	}

	srv, err := server.New(cfg, log, store)
	if err != nil {
		log.Fatal("server setup failed", zap.Error(err))
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// buildLogger returns production JSON logging, or development output when
// debug is set.
func buildLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	if debug {
		c = zap.NewDevelopmentConfig()
		c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return c.Build()
}

// openArchive opens (or creates) the ward archive. A nil return means the
// server runs without recording wards.
func openArchive(cfg config.Config, log *zap.Logger) *archive.Store {
	path, err := archivePath(cfg)
	if err != nil {
		log.Warn("archive disabled", zap.Error(err))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("archive disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	store, err := archive.Open(path)
	if err != nil {
		log.Warn("archive disabled", zap.String("path", path), zap.Error(err))
		return nil
	}
	log.Info("ward archive open", zap.String("path", path))
	return store
}

// archivePath resolves the archive location: the configured path when set,
// otherwise wards.db under the XDG data dir.
func archivePath(cfg config.Config) (string, error) {
	if cfg.ArchivePath != "" {
		return cfg.ArchivePath, nil
	}
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wards.db"), nil
}
