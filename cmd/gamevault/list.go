package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/handiism/gamevault/internal/catalog"
	"github.com/handiism/gamevault/internal/model"
	"github.com/handiism/gamevault/internal/source/dto"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listFlags struct {
	search     string
	category   string
	genres     []string
	popularity string
	minRating  float64
	size       string
	sort       string
	page       int
	pageSize   int
	output     string
}

func newListCmd(global *globalFlags) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog items",
		Long: `List one page of the catalog after search, filters and sorting.

Filters combine with AND. A game passes the genre filter when it carries
at least one of the requested genres.`,
		Example: `  gamevault list
  gamevault list --search dragon
  gamevault list --category RPG --sort rating
  gamevault list --genre FPS --genre Terror --min-rating 4
  gamevault list --popularity new --size small --page 2
  gamevault list --output yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.search, "search", "", "Case-insensitive search over title and description")
	cmd.Flags().StringVar(&flags.category, "category", catalog.AnyCategory, "Category ("+strings.Join(model.Categories, ", ")+")")
	cmd.Flags().StringSliceVar(&flags.genres, "genre", nil, "Required genre; repeat for any of several")
	cmd.Flags().StringVar(&flags.popularity, "popularity", "all", "Popularity (all, popular, new)")
	cmd.Flags().Float64Var(&flags.minRating, "min-rating", 0, "Minimum rating, inclusive")
	cmd.Flags().StringVar(&flags.size, "size", "all", "Install size (all, small, medium, large)")
	cmd.Flags().StringVar(&flags.sort, "sort", "newest", "Sort key (newest, downloads, rating, name)")
	cmd.Flags().IntVar(&flags.page, "page", 1, "Page number; out-of-range pages are clamped")
	cmd.Flags().IntVar(&flags.pageSize, "page-size", 0, "Items per page (0 keeps the configured size)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "Output format (table, yaml, json)")

	return cmd
}

func (f *listFlags) filter() (catalog.Filter, error) {
	category, err := catalog.ParseCategory(f.category)
	if err != nil {
		return catalog.Filter{}, err
	}
	popularity, err := catalog.ParsePopularity(f.popularity)
	if err != nil {
		return catalog.Filter{}, err
	}
	size, err := catalog.ParseSizeClass(f.size)
	if err != nil {
		return catalog.Filter{}, err
	}
	for _, g := range f.genres {
		if !slices.Contains(model.Genres, g) {
			return catalog.Filter{}, fmt.Errorf("unknown genre %q (want one of %s)", g, strings.Join(model.Genres, ", "))
		}
	}
	return catalog.Filter{
		Category:   category,
		Genres:     f.genres,
		Popularity: popularity,
		MinRating:  f.minRating,
		Size:       size,
	}, nil
}

func runList(cmd *cobra.Command, global *globalFlags, flags *listFlags) error {
	filter, err := flags.filter()
	if err != nil {
		return err
	}
	sortKey, err := catalog.ParseSortKey(flags.sort)
	if err != nil {
		return err
	}
	global.pageSize = flags.pageSize

	_, c, err := global.container(cmd)
	if err != nil {
		return err
	}

	store := c.App.Catalog()
	store.SetSearchTerm(flags.search)
	store.SetFilter(filter)
	store.SetSortKey(sortKey)
	store.SetPage(flags.page)
	page := store.View()

	out := cmd.OutOrStdout()
	switch flags.output {
	case "yaml", "json":
		return writePage(out, flags.output, page)
	case "table", "":
		printPage(out, page, sortKey)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, yaml or json)", flags.output)
	}
}

func printPage(w io.Writer, page catalog.Page, key catalog.SortKey) {
	if page.Empty() {
		fmt.Fprintln(w, "No se encontraron juegos")
		return
	}

	fmt.Fprintf(w, "%-36s %-32s %-11s %5s %8s %6s %s\n",
		"ID", "TITLE", "CATEGORY", "RATE", "DOWNL", "SIZE", "PRICE")
	fmt.Fprintln(w, strings.Repeat("-", 112))
	for _, item := range page.Items {
		price := "free"
		if !item.IsFree() {
			price = fmt.Sprintf("$%d", item.Price)
		}
		fmt.Fprintf(w, "%-36s %-32s %-11s %5.1f %8s %6s %s\n",
			item.ID, clip(item.Title, 32), item.Category, item.Rating, item.FormatDownloads(), item.Size, price)
	}

	fmt.Fprintf(w, "\n%d games · page %d of %d · sorted by %s\n",
		page.TotalItems, page.Number, page.TotalPages, key.Label())
}

type pageDoc struct {
	Page       int        `json:"page" yaml:"page"`
	TotalPages int        `json:"total_pages" yaml:"total_pages"`
	TotalItems int        `json:"total_items" yaml:"total_items"`
	Items      []dto.Item `json:"items" yaml:"items"`
}

func writePage(w io.Writer, format string, page catalog.Page) error {
	doc := pageDoc{
		Page:       page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Items:      make([]dto.Item, len(page.Items)),
	}
	for i, item := range page.Items {
		doc.Items[i] = dto.FromItem(item)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
