package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"hirelink/internal/config"
	"hirelink/internal/logger"
	"hirelink/internal/pipeline"
	"hirelink/internal/storage"
	"hirelink/internal/store"
)

// app bundles the constructed core for one command invocation. The CLI is
// the single actor: every command builds the store, performs its one
// synchronous operation and exits.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *store.Store
	pipeline *pipeline.Pipeline
	close    func() error
}

// newApp loads configuration (flags and config file override the
// environment), opens the configured storage backend and loads the store.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v := viper.GetString("data_dir"); v != "" {
		cfg.DataDir = v
	}
	if v := viper.GetString("storage"); v != "" {
		cfg.Storage = v
	}
	if v := viper.GetString("log_level"); v != "" {
		cfg.LogLevel = v
	}

	log := logger.New(cfg.LogLevel)

	var backend storage.Backend
	closer := func() error { return nil }
	switch cfg.Storage {
	case config.StorageSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		b, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, "hirelink.db"))
		if err != nil {
			return nil, err
		}
		backend = b
		closer = b.Close
	case config.StorageFile:
		b, err := storage.NewFileBackend(afero.NewOsFs(), cfg.DataDir)
		if err != nil {
			return nil, err
		}
		backend = b
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}

	s := store.New(ctx, backend, log)
	return &app{
		cfg:      cfg,
		log:      log,
		store:    s,
		pipeline: pipeline.New(s, log),
		close:    closer,
	}, nil
}
