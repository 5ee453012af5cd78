package source

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/handiism/gamevault/internal/model"
)

// DefaultItemCount is the catalog size produced by a Generator.
const DefaultItemCount = 50

const (
	featuredCount   = 6
	screenshotCount = 5
	releaseWindow   = 3 * 365 * 24 * time.Hour
	reviewWindow    = 30 * 24 * time.Hour
)

// Generator produces a deterministic mock catalog and random reviews from
// a single seeded faker. IDs, text and numbers are all drawn from the same
// stream, so two generators with the same seed and clock yield identical
// catalogs.
//
// Generator is safe for concurrent use.
type Generator struct {
	mu    sync.Mutex
	fake  *gofakeit.Faker
	count int
	now   func() time.Time
	items []model.Item
}

// Epoch is the default reference time for release and review dates. A fixed
// reference keeps a seeded catalog identical from one day to the next.
var Epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithItemCount sets the number of generated items.
func WithItemCount(n int) GeneratorOption {
	return func(g *Generator) {
		if n >= 0 {
			g.count = n
		}
	}
}

// WithClock sets the reference time for release and review dates.
// Defaults to Epoch.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// NewGenerator creates a Generator seeded with seed.
func NewGenerator(seed uint64, opts ...GeneratorOption) *Generator {
	g := &Generator{
		fake:  gofakeit.New(seed),
		count: DefaultItemCount,
		now:   func() time.Time { return Epoch },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoadItems returns the generated catalog. The catalog is built on the
// first call and the same items are returned afterwards.
func (g *Generator) LoadItems(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.items == nil {
		g.items = make([]model.Item, g.count)
		for i := range g.items {
			g.items[i] = g.item(i)
		}
	}
	return slices.Clone(g.items), nil
}

// Reviews returns n freshly generated reviews for itemID. Every call
// produces a different batch.
func (g *Generator) Reviews(ctx context.Context, itemID string, n int) ([]model.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	reviews := make([]model.Review, max(n, 0))
	for i := range reviews {
		reviews[i] = model.Review{
			ID:       g.fake.UUID(),
			ItemID:   itemID,
			UserID:   g.fake.UUID(),
			Username: g.fake.Username(),
			Rating:   g.rating(),
			Comment:  g.fake.Paragraph(1, g.fake.Number(1, 3), g.fake.Number(6, 14), " "),
			Date:     g.pastDate(reviewWindow),
		}
	}
	return reviews, nil
}

func (g *Generator) item(index int) model.Item {
	f := g.fake
	image := f.RandomString(thumbnails)
	screenshots := make([]string, screenshotCount)
	for i := range screenshots {
		screenshots[i] = fmt.Sprintf("%s&random=%d", image, f.Uint32())
	}

	return model.Item{
		ID:          f.UUID(),
		Title:       fmt.Sprintf("%s %s %s", f.RandomString(titlePrefixes), f.RandomString(titleNouns), f.RandomString(titleSuffixes)),
		Description: f.Paragraph(3, f.Number(3, 5), f.Number(6, 14), "\n\n"),
		Thumbnail:   image,
		Screenshots: screenshots,
		Category:    f.RandomString(model.Categories),
		Genres:      g.genres(),
		Rating:      g.rating(),
		Downloads:   int64(f.Number(1000, 999_999)),
		Size:        fmt.Sprintf("%d GB", f.Number(1, 50)),
		ReleaseDate: g.pastDate(releaseWindow),
		Requirements: model.Requirements{
			Minimum: model.Spec{
				OS:        "Windows 10 64-bit",
				Processor: "Intel Core i5-4590 / AMD FX 8350",
				Memory:    "8 GB RAM",
				Graphics:  "NVIDIA GTX 970 / AMD R9 290",
				Storage:   fmt.Sprintf("%d GB", f.Number(20, 100)),
			},
			Recommended: model.Spec{
				OS:        "Windows 11 64-bit",
				Processor: "Intel Core i7-8700K / AMD Ryzen 5 3600",
				Memory:    "16 GB RAM",
				Graphics:  "NVIDIA RTX 3070 / AMD RX 6700 XT",
				Storage:   fmt.Sprintf("%d GB", f.Number(50, 150)),
			},
		},
		Price:    f.Number(0, 60),
		Featured: index < featuredCount,
		Popular:  f.Float64() > 0.7,
		New:      f.Float64() > 0.8,
	}
}

// genres picks one to three distinct genres, kept in model.Genres order.
func (g *Generator) genres() []string {
	idx := make([]int, len(model.Genres))
	for i := range idx {
		idx[i] = i
	}
	g.fake.ShuffleInts(idx)
	idx = idx[:g.fake.Number(1, 3)]
	slices.Sort(idx)

	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = model.Genres[j]
	}
	return out
}

// rating returns a score in [0, 5] with one decimal.
func (g *Generator) rating() float64 {
	return float64(g.fake.Number(0, 50)) / 10
}

// pastDate returns a UTC day within window before the reference time.
func (g *Generator) pastDate(window time.Duration) time.Time {
	now := g.now()
	t := g.fake.DateRange(now.Add(-window), now)
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
