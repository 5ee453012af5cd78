package main

import (
	"fmt"

	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/source"
	"github.com/spf13/cobra"
)

func newExportCmd(global *globalFlags) *cobra.Command {
	var (
		out     string
		reviews int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a fixture file",
		Long: `Write the loaded catalog to a YAML or JSON fixture file. The format
follows the file extension. The file can be passed back with --catalog.

With --reviews N, N reviews per item are fetched and stored alongside.`,
		Example: `  gamevault export --seed 7 --out catalog.yaml
  gamevault export --count 20 --reviews 3 --out catalog.json
  gamevault list --catalog catalog.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := source.FormatFromPath(out); err != nil {
				return err
			}

			ctx, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			items := c.App.Catalog().Items()
			var all []model.Review
			if reviews > 0 {
				for _, item := range items {
					batch, err := c.Source.Reviews(ctx, item.ID, reviews)
					if err != nil {
						return fmt.Errorf("failed to fetch reviews for %s: %w", item.ID, err)
					}
					all = append(all, batch...)
				}
			}

			if err := source.WriteFixtureFile(out, items, all); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d items and %d reviews to %s\n", len(items), len(all), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "catalog.yaml", "Output file (.yaml, .yml or .json)")
	cmd.Flags().IntVar(&reviews, "reviews", 0, "Reviews per item to include")

	return cmd
}
