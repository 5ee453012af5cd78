package catalog

import (
	"cmp"
	"slices"
	"testing"

	"github.com/handiism/gamevault/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MostDownloadedFirstPage(t *testing.T) {
	items := fixtureItems(50)
	store := NewStore(items, WithPageSize(12))
	store.SetSortKey(SortMostDownloaded)

	page := store.View()
	require.Len(t, page.Items, 12)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 5, page.TotalPages)

	want := slices.Clone(items)
	slices.SortStableFunc(want, func(a, b model.Item) int { return cmp.Compare(b.Downloads, a.Downloads) })
	assert.Equal(t, ids(want[:12]), ids(page.Items))

	for i := 1; i < len(page.Items); i++ {
		assert.GreaterOrEqual(t, page.Items[i-1].Downloads, page.Items[i].Downloads)
	}
}

func TestStore_CategoryOnly(t *testing.T) {
	items := fixtureItems(50)
	store := NewStore(items)
	store.SetFilter(Filter{Category: "RPG", Popularity: PopularityAll})

	var want []string
	for _, item := range items {
		if item.Category == "RPG" {
			want = append(want, item.ID)
		}
	}
	require.NotEmpty(t, want)
	assert.Equal(t, want, ids(store.Visible()))
}

func TestStore_VisibleIsConjunctionSubset(t *testing.T) {
	items := fixtureItems(50)
	store := NewStore(items)
	store.SetSearchTerm("GAME 1")
	store.SetFilter(Filter{Genres: []string{"FPS", "Terror"}, MinRating: 1})

	all := make(map[string]bool)
	for _, item := range items {
		all[item.ID] = true
	}

	visible := make(map[string]bool)
	for _, item := range store.Visible() {
		assert.True(t, all[item.ID], "visible item %s not in collection", item.ID)
		visible[item.ID] = true
	}
	for _, item := range items {
		want := MatchesSearch(item, "GAME 1") && store.Filter().Matches(item)
		assert.Equal(t, want, visible[item.ID], item.ID)
	}
}

func TestStore_FilterIdempotent(t *testing.T) {
	store := NewStore(fixtureItems(50))
	f := Filter{Popularity: PopularityPopular, MinRating: 2}

	store.SetFilter(f)
	once := ids(store.Visible())
	store.SetFilter(f)
	twice := ids(store.Visible())

	assert.Equal(t, once, twice)
}

func TestStore_FilterChangeResetsPage(t *testing.T) {
	store := NewStore(fixtureItems(50), WithPageSize(12))
	store.SetPage(3)
	require.Equal(t, 3, store.Page())

	store.SetFilter(Filter{Category: "RPG", MinRating: 0})
	require.LessOrEqual(t, store.VisibleCount(), 12)
	assert.Equal(t, 1, store.Page())
	assert.Equal(t, 1, store.View().Number)
}

func TestStore_SearchAndSortResetPage(t *testing.T) {
	store := NewStore(fixtureItems(50), WithPageSize(5))

	store.SetPage(4)
	store.SetSearchTerm("game")
	assert.Equal(t, 1, store.Page())

	store.SetPage(4)
	store.SetSortKey(SortAlphabetical)
	assert.Equal(t, 1, store.Page())
	assert.Equal(t, SortAlphabetical, store.SortKey())
}

func TestStore_PageNavigationClamps(t *testing.T) {
	store := NewStore(fixtureItems(30), WithPageSize(12))

	store.PrevPage()
	assert.Equal(t, 1, store.Page())

	store.NextPage()
	store.NextPage()
	store.NextPage()
	assert.Equal(t, 3, store.Page())

	store.SetPage(-4)
	assert.Equal(t, 1, store.Page())
}

func TestStore_NoMatchesShowsEmptyPage(t *testing.T) {
	store := NewStore(fixtureItems(20))
	store.SetSearchTerm("no such game anywhere")

	page := store.View()
	assert.True(t, page.Empty())
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.Number)

	store.ResetFilter()
	store.SetSearchTerm("")
	assert.Equal(t, 20, store.VisibleCount())
}

func TestStore_IsolatedFromCallerSlices(t *testing.T) {
	items := fixtureItems(3)
	store := NewStore(items)
	items[0].Title = "changed"

	got, ok := store.Lookup("item-00")
	require.True(t, ok)
	assert.Equal(t, "Game 00", got.Title)

	genres := []string{"FPS"}
	store.SetFilter(Filter{Genres: genres})
	genres[0] = "Puzzle"
	assert.Equal(t, []string{"FPS"}, store.Filter().Genres)

	_, ok = store.Lookup("missing")
	assert.False(t, ok)
}

func TestHighlightsOf(t *testing.T) {
	items := fixtureItems(50)
	h := HighlightsOf(items)

	require.True(t, h.HasFeatured)
	assert.Equal(t, "item-00", h.Featured.ID)
	assert.Len(t, h.New, 6)
	for _, item := range h.New {
		assert.True(t, item.New)
	}
	require.Len(t, h.Top, 5)
	for i := 1; i < len(h.Top); i++ {
		assert.GreaterOrEqual(t, h.Top[i-1].Downloads, h.Top[i].Downloads)
	}

	noFeatured := []model.Item{{ID: "x"}, {ID: "y"}}
	assert.Equal(t, "x", HighlightsOf(noFeatured).Featured.ID)

	assert.False(t, HighlightsOf(nil).HasFeatured)
}
