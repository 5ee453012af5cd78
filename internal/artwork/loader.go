package artwork

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/handiism/gamevault/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many previews render at once.
const DefaultConcurrency = 4

// Preview is the rendered thumbnail of one item.
type Preview struct {
	ItemID string
	Art    string
	Err    error
}

// Loader renders page previews concurrently and caches them by reference.
type Loader struct {
	renderer    *Renderer
	concurrency int
	logger      *slog.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewLoader creates a Loader. Non-positive concurrency uses
// DefaultConcurrency.
func NewLoader(renderer *Renderer, concurrency int, logger *slog.Logger) *Loader {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		renderer:    renderer,
		concurrency: concurrency,
		logger:      logger,
		cache:       make(map[string]string),
	}
}

// Width returns the preview width in cells.
func (l *Loader) Width() int {
	return l.renderer.Width()
}

// Load renders the thumbnails of items and returns one Preview per item,
// in the same order. A cancelled context stops scheduling new work and
// marks the remaining previews with the context error.
func (l *Loader) Load(ctx context.Context, items []model.Item) []Preview {
	previews := make([]Preview, len(items))

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i, item := range items {
		previews[i].ItemID = item.ID
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				previews[i].Err = err
				return nil
			}
			previews[i].Art, previews[i].Err = l.render(ctx, item.Thumbnail)
			return nil
		})
	}
	// Workers record failures on their Preview and always return nil; the
	// group only bounds concurrency.
	_ = g.Wait()

	return previews
}

func (l *Loader) render(ctx context.Context, ref string) (string, error) {
	l.mu.Lock()
	art, ok := l.cache[ref]
	l.mu.Unlock()
	if ok {
		return art, nil
	}

	art, err := l.renderer.RenderFile(ctx, ref)
	if err != nil {
		if !errors.Is(err, ErrRemote) && !errors.Is(err, ErrNoArtwork) {
			l.logger.Warn("artwork preview failed", "ref", ref, "error", err)
		}
		return "", err
	}

	l.mu.Lock()
	l.cache[ref] = art
	l.mu.Unlock()
	return art, nil
}
