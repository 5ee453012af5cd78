package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/handiism/gamevault/internal/config"
	"github.com/handiism/gamevault/internal/download"
	"github.com/handiism/gamevault/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Generated(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 42
	settings.MockItemCount = 30

	c, err := New(context.Background(), settings, nil)
	require.NoError(t, err)

	store := c.App.Catalog()
	assert.Equal(t, 30, store.Len())
	assert.Equal(t, 12, store.PageSize())
	assert.Equal(t, 3, store.View().TotalPages)
}

func TestNew_SameSeedSameCatalog(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 42

	a, err := New(context.Background(), settings, nil)
	require.NoError(t, err)
	b, err := New(context.Background(), settings, nil)
	require.NoError(t, err)

	assert.Equal(t, a.App.Catalog().Items(), b.App.Catalog().Items())
}

func TestNew_FromFiles(t *testing.T) {
	ctx := context.Background()
	gen := source.NewGenerator(1, source.WithItemCount(5))
	items, err := gen.LoadItems(ctx)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, source.WriteFixtureFile(path, items, nil))

	settings := config.DefaultSettings()
	settings.CatalogPaths = []string{path}
	settings.ReviewsPerItem = 2

	c, err := New(ctx, settings, nil)
	require.NoError(t, err)
	assert.Equal(t, items, c.App.Catalog().Items())

	require.NoError(t, c.App.SelectByID(ctx, items[0].ID))
	assert.Len(t, c.App.Reviews(), 2, "generator fills in reviews missing from files")
}

func TestNew_BadFile(t *testing.T) {
	settings := config.DefaultSettings()
	settings.CatalogPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}

	_, err := New(context.Background(), settings, nil)
	assert.Error(t, err)
}

func TestNewDownloadManager(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Seed = 3
	settings.MockItemCount = 1
	settings.DownloadSpeed = 1 << 20

	c, err := New(context.Background(), settings, nil)
	require.NoError(t, err)

	var events []download.ProgressEvent
	m := c.NewDownloadManager(func(e download.ProgressEvent) { events = append(events, e) })

	item := c.App.Catalog().Items()[0]
	assert.Equal(t, 1, m.Enqueue(item))
	require.NoError(t, m.Start(context.Background()))

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, download.LevelSuccess, last.Level)
	assert.Equal(t, item.ID, last.ItemID)
}
