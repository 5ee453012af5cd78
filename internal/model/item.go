package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Categories lists every category an item may belong to, in display order.
var Categories = []string{
	"Acción",
	"Aventura",
	"RPG",
	"Estrategia",
	"Deportes",
	"Simulación",
	"Carreras",
	"Arcade",
}

// Genres lists every genre tag an item may carry, in display order.
var Genres = []string{
	"FPS",
	"MMORPG",
	"Supervivencia",
	"Plataformas",
	"Terror",
	"Puzzle",
	"Sandbox",
	"Battle Royale",
}

// Item represents a game in the catalog.
//
// Item contains everything the list and detail views need:
//   - Title, Description and artwork references for display
//   - Category and Genres for filtering
//   - Rating, Downloads and ReleaseDate for sorting
//   - Featured, Popular and New flags for highlights and filtering
//
// Items are created by a data source and are treated as immutable values.
type Item struct {
	// ID uniquely identifies the item within a catalog.
	ID string

	// Title is the display name.
	Title string

	// Description is the long-form description shown on the detail view.
	Description string

	// Thumbnail is the cover image reference. It may be a local file path
	// or a remote URL; only local files can be previewed.
	Thumbnail string

	// Screenshots holds additional image references for the carousel.
	Screenshots []string

	// Category is one of Categories.
	Category string

	// Genres holds one or more of Genres.
	Genres []string

	// Rating is the average score in [0, 5].
	Rating float64

	// Downloads is the total download count.
	Downloads int64

	// Size is the human-readable install size, e.g. "12 GB".
	Size string

	// ReleaseDate is the day the item was released.
	ReleaseDate time.Time

	// Requirements holds minimum and recommended system requirements.
	Requirements Requirements

	// Price is the price in whole currency units. Zero means free.
	Price int

	Featured bool
	Popular  bool
	New      bool
}

// Requirements groups the minimum and recommended hardware specs.
type Requirements struct {
	Minimum     Spec
	Recommended Spec
}

// Spec describes one hardware configuration.
type Spec struct {
	OS        string
	Processor string
	Memory    string
	Graphics  string
	Storage   string
}

// Fields returns the spec as ordered label/value pairs for display.
func (s Spec) Fields() [][2]string {
	return [][2]string{
		{"os", s.OS},
		{"processor", s.Processor},
		{"memory", s.Memory},
		{"graphics", s.Graphics},
		{"storage", s.Storage},
	}
}

// HasGenre reports whether the item is tagged with genre.
func (i Item) HasGenre(genre string) bool {
	return slices.Contains(i.Genres, genre)
}

// IsFree reports whether the item costs nothing.
func (i Item) IsFree() bool {
	return i.Price == 0
}

// SizeBytes parses Size as a byte quantity, honouring its unit: "12 GB",
// "500 MB" and "1.5 GiB" are all understood. It returns 0 when Size is
// empty or malformed. A bare number counts as bytes.
func (i Item) SizeBytes() uint64 {
	n, err := humanize.ParseBytes(strings.TrimSpace(i.Size))
	if err != nil {
		return 0
	}
	return n
}

// SizeGB returns the install size in decimal gigabytes, e.g. "500 MB" -> 0.5.
func (i Item) SizeGB() float64 {
	return float64(i.SizeBytes()) / humanize.GByte
}

// FormatDownloads renders the download count in compact form.
//
// Examples:
//
//	1500000 -> "1.5M"
//	12345   -> "12.3K"
//	999     -> "999"
func (i Item) FormatDownloads() string {
	return FormatCount(i.Downloads)
}

// PriceLabel returns the call-to-action label used on detail views.
func (i Item) PriceLabel() string {
	if i.IsFree() {
		return "Descargar Gratis"
	}
	return fmt.Sprintf("Comprar por $%d", i.Price)
}

// FormatCount renders n using K/M suffixes with one decimal.
func FormatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}
