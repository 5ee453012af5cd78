package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/handiism/gamevault/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the total order applied before pagination.
type SortKey string

const (
	SortNewest         SortKey = "newest"
	SortMostDownloaded SortKey = "downloads"
	SortHighestRated   SortKey = "rating"
	SortAlphabetical   SortKey = "name"
)

// SortKeys lists the keys in the order the UI cycles through them.
var SortKeys = []SortKey{SortNewest, SortMostDownloaded, SortHighestRated, SortAlphabetical}

// Label returns the display label for k.
func (k SortKey) Label() string {
	switch k {
	case SortNewest:
		return "Más recientes"
	case SortMostDownloaded:
		return "Más populares"
	case SortHighestRated:
		return "Mejor calificados"
	case SortAlphabetical:
		return "A-Z"
	default:
		return string(k)
	}
}

// Next returns the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	i := slices.Index(SortKeys, k)
	return SortKeys[(i+1)%len(SortKeys)]
}

// ParseSortKey accepts a key name or one of its aliases.
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "", "newest":
		return SortNewest, nil
	case "downloads", "most-downloaded", "popular":
		return SortMostDownloaded, nil
	case "rating", "highest-rated":
		return SortHighestRated, nil
	case "name", "alphabetical", "az":
		return SortAlphabetical, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want newest, downloads, rating or name)", s)
}

// Sorter orders items by a SortKey. Titles are compared with a collator
// for the configured language.
//
// A Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter whose alphabetical order follows tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag, collate.IgnoreCase)}
}

// Sort returns a stably sorted copy of items. Items with equal keys keep
// their relative input order. Unknown keys leave the order unchanged.
func (s *Sorter) Sort(items []model.Item, key SortKey) []model.Item {
	sorted := slices.Clone(items)
	if cmpFn := s.comparator(key); cmpFn != nil {
		slices.SortStableFunc(sorted, cmpFn)
	}
	return sorted
}

func (s *Sorter) comparator(key SortKey) func(a, b model.Item) int {
	switch key {
	case SortNewest:
		return func(a, b model.Item) int {
			return b.ReleaseDate.Compare(a.ReleaseDate)
		}
	case SortMostDownloaded:
		return func(a, b model.Item) int {
			return cmp.Compare(b.Downloads, a.Downloads)
		}
	case SortHighestRated:
		return func(a, b model.Item) int {
			return cmp.Compare(b.Rating, a.Rating)
		}
	case SortAlphabetical:
		return func(a, b model.Item) int {
			return s.collator.CompareString(a.Title, b.Title)
		}
	default:
		return nil
	}
}
