package source

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/handiism/gamevault/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(seed uint64, opts ...GeneratorOption) *Generator {
	opts = append([]GeneratorOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewGenerator(seed, opts...)
}

func TestGenerator_Deterministic(t *testing.T) {
	ctx := context.Background()

	a, err := newTestGenerator(7).LoadItems(ctx)
	require.NoError(t, err)
	b, err := newTestGenerator(7).LoadItems(ctx)
	require.NoError(t, err)
	c, err := newTestGenerator(8).LoadItems(ctx)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0].ID, c[0].ID)
}

func TestGenerator_DefaultClockIsEpoch(t *testing.T) {
	ctx := context.Background()

	a, err := NewGenerator(11).LoadItems(ctx)
	require.NoError(t, err)
	b, err := NewGenerator(11).LoadItems(ctx)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	for _, item := range a {
		assert.False(t, item.ReleaseDate.After(Epoch))
	}
}

func TestGenerator_LoadItemsIsStable(t *testing.T) {
	gen := newTestGenerator(1)
	first, err := gen.LoadItems(context.Background())
	require.NoError(t, err)
	second, err := gen.LoadItems(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerator_ItemRanges(t *testing.T) {
	items, err := newTestGenerator(3).LoadItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, DefaultItemCount)

	ids := make(map[string]bool)
	for i, item := range items {
		_, err := uuid.Parse(item.ID)
		require.NoError(t, err)
		assert.False(t, ids[item.ID], "duplicate id %s", item.ID)
		ids[item.ID] = true

		assert.Contains(t, model.Categories, item.Category)
		assert.True(t, len(item.Genres) >= 1 && len(item.Genres) <= 3)
		for _, g := range item.Genres {
			assert.Contains(t, model.Genres, g)
		}
		assert.True(t, item.Rating >= 0 && item.Rating <= 5)
		assert.Equal(t, item.Rating, float64(int(item.Rating*10+0.5))/10, "one decimal")
		assert.True(t, item.Downloads >= 1000 && item.Downloads <= 999_999)
		assert.True(t, item.SizeGB() >= 1 && item.SizeGB() <= 50)
		assert.True(t, item.Price >= 0 && item.Price <= 60)
		assert.Len(t, item.Screenshots, screenshotCount)
		assert.False(t, item.ReleaseDate.After(fixedNow))
		assert.True(t, item.ReleaseDate.After(fixedNow.Add(-releaseWindow-24*time.Hour)))
		assert.Equal(t, i < featuredCount, item.Featured)
		assert.NotEmpty(t, item.Requirements.Minimum.Storage)
	}
}

func TestGenerator_Reviews(t *testing.T) {
	gen := newTestGenerator(5)
	ctx := context.Background()

	first, err := gen.Reviews(ctx, "item-1", 5)
	require.NoError(t, err)
	second, err := gen.Reviews(ctx, "item-1", 5)
	require.NoError(t, err)

	require.Len(t, first, 5)
	assert.NotEqual(t, first[0].ID, second[0].ID, "each call yields a fresh batch")
	for _, r := range first {
		assert.Equal(t, "item-1", r.ItemID)
		assert.NotEmpty(t, r.Username)
		assert.NotEmpty(t, r.Comment)
		assert.True(t, r.Date.After(fixedNow.Add(-reviewWindow-24*time.Hour)))
	}

	none, err := gen.Reviews(ctx, "item-1", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestGenerator(1).LoadItems(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
