package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/state"
	"github.com/spf13/cobra"
)

func newShowCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one catalog item",
		Long: `Show the detail view of one item: description, system requirements,
download information and a fresh batch of reviews.

Item IDs are printed by "gamevault list". With generated data, pass the
same --seed to both commands to get the same IDs.`,
		Example: `  gamevault list --seed 42
  gamevault show --seed 42 <id>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, c, err := global.container(cmd)
			if err != nil {
				return err
			}

			app := c.App
			err = app.SelectByID(ctx, args[0])
			if errors.Is(err, state.ErrUnknownItem) {
				return err
			}
			// The detail is still shown when only the reviews failed.
			item, _ := app.Selected()
			printDetail(cmd.OutOrStdout(), item, app.Reviews(), app.ReviewsErr())
			return nil
		},
	}
}

func printDetail(w io.Writer, item model.Item, reviews []model.Review, reviewsErr error) {
	fmt.Fprintf(w, "%s\n%s\n", item.Title, strings.Repeat("=", len([]rune(item.Title))))
	fmt.Fprintf(w, "ID:        %s\n", item.ID)
	fmt.Fprintf(w, "Category:  %s\n", item.Category)
	fmt.Fprintf(w, "Genres:    %s\n", strings.Join(item.Genres, ", "))
	fmt.Fprintf(w, "Rating:    %.1f / 5\n", item.Rating)
	fmt.Fprintf(w, "Downloads: %s\n", item.FormatDownloads())
	fmt.Fprintf(w, "Released:  %s\n", item.ReleaseDate.Format("2006-01-02"))
	fmt.Fprintf(w, "Size:      %s\n", item.Size)
	fmt.Fprintf(w, "Price:     %s\n", item.PriceLabel())

	var flags []string
	if item.Featured {
		flags = append(flags, "featured")
	}
	if item.Popular {
		flags = append(flags, "popular")
	}
	if item.New {
		flags = append(flags, "new")
	}
	if len(flags) > 0 {
		fmt.Fprintf(w, "Flags:     %s\n", strings.Join(flags, ", "))
	}

	fmt.Fprintf(w, "\n%s\n", item.Description)

	fmt.Fprintln(w, "\nRequirements")
	minimum := item.Requirements.Minimum.Fields()
	recommended := item.Requirements.Recommended.Fields()
	fmt.Fprintf(w, "  %-10s %-30s %s\n", "", "MINIMUM", "RECOMMENDED")
	for i := range minimum {
		fmt.Fprintf(w, "  %-10s %-30s %s\n", minimum[i][0], minimum[i][1], recommended[i][1])
	}

	fmt.Fprintf(w, "\nReviews (%d)\n", len(reviews))
	if reviewsErr != nil {
		fmt.Fprintf(w, "  unavailable: %v\n", reviewsErr)
		return
	}
	for _, r := range reviews {
		fmt.Fprintf(w, "  %s  %.1f  %s\n", r.Date.Format("2006-01-02"), r.Rating, r.Username)
		fmt.Fprintf(w, "    %s\n", r.Comment)
	}
}
