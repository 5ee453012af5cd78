package catalog

import (
	"fmt"
	"slices"

	"github.com/handiism/gamevault/internal/model"
)

// AnyCategory matches items of every category.
const AnyCategory = "all"

// Popularity restricts the visible set by the popular/new flags.
type Popularity string

const (
	PopularityAll     Popularity = "all"
	PopularityPopular Popularity = "popular"
	PopularityNew     Popularity = "new"
)

// SizeClass buckets items by install size.
type SizeClass string

const (
	SizeAll    SizeClass = "all"
	SizeSmall  SizeClass = "small"  // under 10 GB
	SizeMedium SizeClass = "medium" // 10 to 30 GB
	SizeLarge  SizeClass = "large"  // over 30 GB
)

// Filter is the complete set of filter criteria. A Filter is replaced as a
// whole on every update; it is never merged with a previous one.
//
// The zero Filter matches every item.
type Filter struct {
	// Category is AnyCategory (or empty) or one of model.Categories.
	Category string

	// Genres lists required genres. An item passes when it carries at
	// least one of them. Empty means no genre constraint.
	Genres []string

	// Popularity selects all items, popular ones or new ones.
	Popularity Popularity

	// MinRating is the inclusive lower bound on Item.Rating.
	MinRating float64

	// Size restricts by install size class.
	Size SizeClass
}

// DefaultFilter returns the filter applied on startup and by "clear".
func DefaultFilter() Filter {
	return Filter{
		Category:   AnyCategory,
		Popularity: PopularityAll,
		Size:       SizeAll,
	}
}

// IsZero reports whether f constrains nothing.
func (f Filter) IsZero() bool {
	return (f.Category == "" || f.Category == AnyCategory) &&
		len(f.Genres) == 0 &&
		(f.Popularity == "" || f.Popularity == PopularityAll) &&
		f.MinRating <= 0 &&
		(f.Size == "" || f.Size == SizeAll)
}

// ToggleGenre returns a copy of f with genre added to or removed from the
// required genres.
func (f Filter) ToggleGenre(genre string) Filter {
	genres := slices.Clone(f.Genres)
	if i := slices.Index(genres, genre); i >= 0 {
		genres = slices.Delete(genres, i, i+1)
	} else {
		genres = append(genres, genre)
	}
	f.Genres = genres
	return f
}

// Predicate reports whether an item satisfies one criterion.
type Predicate func(model.Item) bool

// Predicates returns one predicate per criterion. Matches is their
// conjunction; each predicate only reads its own field of f, so any
// evaluation order yields the same result.
func (f Filter) Predicates() []Predicate {
	return []Predicate{
		f.matchesCategory,
		f.matchesGenres,
		f.matchesPopularity,
		f.matchesRating,
		f.matchesSize,
	}
}

// Matches reports whether item passes every criterion of f.
func (f Filter) Matches(item model.Item) bool {
	ok := true
	for _, p := range f.Predicates() {
		ok = p(item) && ok
	}
	return ok
}

func (f Filter) matchesCategory(item model.Item) bool {
	return f.Category == "" || f.Category == AnyCategory || item.Category == f.Category
}

func (f Filter) matchesGenres(item model.Item) bool {
	if len(f.Genres) == 0 {
		return true
	}
	return slices.ContainsFunc(f.Genres, item.HasGenre)
}

func (f Filter) matchesPopularity(item model.Item) bool {
	switch f.Popularity {
	case PopularityPopular:
		return item.Popular
	case PopularityNew:
		return item.New
	default:
		return true
	}
}

func (f Filter) matchesRating(item model.Item) bool {
	return item.Rating >= f.MinRating
}

func (f Filter) matchesSize(item model.Item) bool {
	switch f.Size {
	case SizeSmall:
		return item.SizeGB() < 10
	case SizeMedium:
		gb := item.SizeGB()
		return gb >= 10 && gb <= 30
	case SizeLarge:
		return item.SizeGB() > 30
	default:
		return true
	}
}

// ParseCategory validates a category name. "all" and "" map to AnyCategory.
func ParseCategory(s string) (string, error) {
	if s == "" || s == AnyCategory {
		return AnyCategory, nil
	}
	if !slices.Contains(model.Categories, s) {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return s, nil
}

// ParsePopularity validates a popularity mode. "" maps to PopularityAll.
func ParsePopularity(s string) (Popularity, error) {
	switch Popularity(s) {
	case "", PopularityAll:
		return PopularityAll, nil
	case PopularityPopular, PopularityNew:
		return Popularity(s), nil
	}
	return "", fmt.Errorf("unknown popularity %q (want all, popular or new)", s)
}

// ParseSizeClass validates a size class. "" maps to SizeAll.
func ParseSizeClass(s string) (SizeClass, error) {
	switch SizeClass(s) {
	case "", SizeAll:
		return SizeAll, nil
	case SizeSmall, SizeMedium, SizeLarge:
		return SizeClass(s), nil
	}
	return "", fmt.Errorf("unknown size %q (want all, small, medium or large)", s)
}
