package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gamevault/internal/bootstrap"
	"github.com/handiism/gamevault/internal/config"
	"github.com/handiism/gamevault/internal/logging"
	"github.com/handiism/gamevault/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Resolve(config.DefaultPath())
	if err != nil {
		return err
	}

	f, err := tea.LogToFile(settings.LogFile, "gamevault")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	cfg := settings.ToLogConfig()
	cfg.Output = f
	logger := logging.New(cfg)

	ctx := logging.NewCorrelationID(context.Background())
	c, err := bootstrap.New(ctx, settings, logger)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		App:        c.App,
		Loader:     c.Loader,
		Sender:     c.Sender,
		Downloads:  c.NewDownloadManager(nil),
		ResetDelay: settings.ResetDelay(),
		Logger:     logger,
	})
}
