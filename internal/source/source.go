package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/handiism/gamevault/internal/model"
)

// ErrNotFound is returned when a source has no data for the requested item.
var ErrNotFound = errors.New("not found")

// Catalog loads the item collection.
type Catalog interface {
	LoadItems(ctx context.Context) ([]model.Item, error)
}

// Reviews fetches up to n reviews for an item.
type Reviews interface {
	Reviews(ctx context.Context, itemID string, n int) ([]model.Review, error)
}

// Combined serves items from one Catalog and reviews from the first of
// several review sources that knows the item.
type Combined struct {
	catalog Catalog
	reviews []Reviews
}

// Combine creates a Combined source.
func Combine(catalog Catalog, reviews ...Reviews) *Combined {
	return &Combined{catalog: catalog, reviews: reviews}
}

// LoadItems delegates to the catalog.
func (c *Combined) LoadItems(ctx context.Context) ([]model.Item, error) {
	return c.catalog.LoadItems(ctx)
}

// Reviews asks each review source in order, skipping those that answer
// ErrNotFound.
func (c *Combined) Reviews(ctx context.Context, itemID string, n int) ([]model.Review, error) {
	for _, r := range c.reviews {
		reviews, err := r.Reviews(ctx, itemID, n)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return reviews, err
	}
	return nil, fmt.Errorf("reviews for %s: %w", itemID, ErrNotFound)
}
