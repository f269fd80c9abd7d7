package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/config"
	"github.com/jonathan/career-planner/internal/logger"
	"github.com/jonathan/career-planner/internal/observability"
	"github.com/jonathan/career-planner/internal/profile"
	"github.com/jonathan/career-planner/internal/storage"
)

// app bundles what every command needs
type app struct {
	cfg     *config.Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	store   storage.Store
	session *profile.Session
	printer *observability.Printer
}

// openApp resolves configuration (flags over env over config file over
// defaults), loads the catalog and opens the profile session.
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("store") {
		cfg.Store = storeKind
	}
	if flags.Changed("catalog") {
		cfg.CatalogPath = catalogPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cfg.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		log.Debug().Str("path", cfg.CatalogPath).Int("majors", len(cat.Majors())).Msg("catalog loaded")
	}

	store, err := storage.Open(cfg.Store, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}

	session, err := profile.Open(commandContext(cmd), store, cat, log)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}

	return &app{
		cfg:     cfg,
		logger:  log,
		catalog: cat,
		store:   store,
		session: session,
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn().Err(err).Msg("failed to close store")
	}
}

// commandContext returns the command's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
