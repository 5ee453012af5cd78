package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/handiism/gamevault/internal/bootstrap"
	"github.com/handiism/gamevault/internal/config"
	"github.com/handiism/gamevault/internal/logging"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	catalog    []string
	seed       uint64
	count      int
	logLevel   string
	logFormat  string

	// pageSize is set by commands that expose their own --page-size.
	pageSize int
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", config.DefaultPath(), "Path to settings file")
	pf.StringSliceVar(&f.catalog, "catalog", nil, "Catalog fixture files (.yaml, .yml, .json); overrides settings")
	pf.Uint64Var(&f.seed, "seed", 0, "Seed for generated data (0 keeps the configured seed)")
	pf.IntVar(&f.count, "count", 0, "Number of generated items (0 keeps the configured count)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
}

// settings resolves the settings file and environment, then applies flags.
func (f *globalFlags) settings() (*config.Settings, error) {
	s, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, err
	}
	if len(f.catalog) > 0 {
		s.CatalogPaths = f.catalog
	}
	if f.seed != 0 {
		s.Seed = f.seed
	}
	if f.count > 0 {
		s.MockItemCount = f.count
	}
	if f.pageSize > 0 {
		s.PageSize = f.pageSize
	}
	if f.logLevel != "" {
		s.LogLevel = f.logLevel
	}
	if f.logFormat != "" {
		s.LogFormat = f.logFormat
	}
	return s, nil
}

func newLogger(s *config.Settings, w io.Writer) *slog.Logger {
	cfg := s.ToLogConfig()
	cfg.Output = w
	cfg.Version = version
	return logging.New(cfg)
}

// container builds the application for a CLI command. Logs go to the
// command's stderr and carry a per-invocation correlation ID.
func (f *globalFlags) container(cmd *cobra.Command) (context.Context, *bootstrap.Container, error) {
	s, err := f.settings()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(s, cmd.ErrOrStderr()).With("command", cmd.Name())
	ctx := logging.NewCorrelationID(cmd.Context())

	c, err := bootstrap.New(ctx, s, logger)
	if err != nil {
		return nil, nil, err
	}
	return ctx, c, nil
}
