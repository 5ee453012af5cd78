package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/gamevault/internal/bootstrap"
	"github.com/handiism/gamevault/internal/logging"
	"github.com/handiism/gamevault/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive interface",
		Long: `Start the terminal interface. It owns the terminal, so logs are written
to the configured log file instead of stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.settings()
			if err != nil {
				return err
			}

			f, err := tea.LogToFile(s.LogFile, "gamevault")
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()

			logger := newLogger(s, f).With("command", "tui")
			ctx := logging.NewCorrelationID(cmd.Context())

			c, err := bootstrap.New(ctx, s, logger)
			if err != nil {
				return err
			}

			return tui.Run(tui.Options{
				App:        c.App,
				Loader:     c.Loader,
				Sender:     c.Sender,
		Downloads:  c.NewDownloadManager(nil),
				ResetDelay: s.ResetDelay(),
				Logger:     logger,
			})
		},
	}
}
