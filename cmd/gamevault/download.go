package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/handiism/gamevault/internal/download"
	"github.com/handiism/gamevault/internal/form"
	"github.com/handiism/gamevault/internal/state"
	"github.com/spf13/cobra"
)

// errLoginRequired mirrors the detail view sending anonymous users to login.
var errLoginRequired = errors.New("sign in to download (pass --email and --password)")

func newDownloadCmd(global *globalFlags) *cobra.Command {
	var login form.Login

	cmd := &cobra.Command{
		Use:   "download <id>...",
		Short: "Simulate downloading games",
		Long: `Simulate downloading one or more games. Downloads require a session,
so the login flags are validated first, exactly as in the detail view.

Nothing is fetched: each game "transfers" its install size at the
configured download_speed (GB per second).`,
		Example: `  gamevault download --email ana@example.com --password secret1 <id>`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			app := c.App
			if login.Email != "" || login.Password != "" {
				app.OpenLogin()
				if !app.SubmitLogin(login) {
					return printFieldErrors(cmd.ErrOrStderr(), app.AuthErrors())
				}
			}

			// Events arrive from concurrent download workers.
			var mu sync.Mutex
			out := cmd.OutOrStdout()
			manager := c.NewDownloadManager(func(e download.ProgressEvent) {
				if e.Level == download.LevelVerbose {
					return
				}
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintln(out, e.Message)
			})

			for _, id := range args {
				// Missing reviews do not block a download.
				if err := app.SelectByID(ctx, id); errors.Is(err, state.ErrUnknownItem) {
					return err
				}
				if !app.RequestDownload() {
					return errLoginRequired
				}
				item, _ := app.Selected()
				manager.Enqueue(item)
			}

			if err := manager.Start(ctx); err != nil {
				return fmt.Errorf("download interrupted: %w", err)
			}
			p := manager.GetProgress()
			fmt.Fprintf(out, "%d of %d downloads complete\n", p.Done, p.Files)
			return nil
		},
	}

	cmd.Flags().StringVar(&login.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&login.Password, "password", "", "Password")

	return cmd
}
