package catalog

import (
	"cmp"
	"slices"

	"github.com/handiism/gamevault/internal/model"
)

const (
	highlightNewCount = 6
	highlightTopCount = 5
)

// Highlights is the home view summary of a collection.
type Highlights struct {
	// Featured is the first featured item, or the first item when none is
	// flagged. HasFeatured is false for an empty collection.
	Featured    model.Item
	HasFeatured bool

	// New holds the first new items in collection order.
	New []model.Item

	// Top holds the most downloaded items, highest first.
	Top []model.Item
}

// HighlightsOf computes Highlights for items.
func HighlightsOf(items []model.Item) Highlights {
	var h Highlights
	if len(items) == 0 {
		return h
	}

	h.HasFeatured = true
	h.Featured = items[0]
	if i := slices.IndexFunc(items, func(item model.Item) bool { return item.Featured }); i >= 0 {
		h.Featured = items[i]
	}

	for _, item := range items {
		if len(h.New) == highlightNewCount {
			break
		}
		if item.New {
			h.New = append(h.New, item)
		}
	}

	top := slices.Clone(items)
	slices.SortStableFunc(top, func(a, b model.Item) int {
		return cmp.Compare(b.Downloads, a.Downloads)
	})
	h.Top = top[:min(highlightTopCount, len(top))]

	return h
}
