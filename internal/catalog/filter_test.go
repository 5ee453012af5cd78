package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/handiism/gamevault/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Matches(t *testing.T) {
	rpg := model.Item{Category: "RPG", Genres: []string{"MMORPG"}, Rating: 4.5, Popular: true, Size: "12 GB"}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter", Filter{}, true},
		{"default filter", DefaultFilter(), true},
		{"category match", Filter{Category: "RPG"}, true},
		{"category mismatch", Filter{Category: "Arcade"}, false},
		{"genre overlap", Filter{Genres: []string{"FPS", "MMORPG"}}, true},
		{"genre disjoint", Filter{Genres: []string{"FPS", "Terror"}}, false},
		{"popular only", Filter{Popularity: PopularityPopular}, true},
		{"new only", Filter{Popularity: PopularityNew}, false},
		{"rating boundary inclusive", Filter{MinRating: 4.5}, true},
		{"rating above", Filter{MinRating: 4.6}, false},
		{"size medium", Filter{Size: SizeMedium}, true},
		{"size small", Filter{Size: SizeSmall}, false},
		{"size large", Filter{Size: SizeLarge}, false},
		{"all criteria", Filter{Category: "RPG", Genres: []string{"MMORPG"}, Popularity: PopularityPopular, MinRating: 4, Size: SizeMedium}, true},
		{"one failing criterion", Filter{Category: "RPG", Genres: []string{"MMORPG"}, Popularity: PopularityNew, MinRating: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(rpg))
		})
	}
}

func TestFilter_SizeClassHonoursUnits(t *testing.T) {
	tests := []struct {
		size string
		want SizeClass
	}{
		{"500 MB", SizeSmall},
		{"2.5 GB", SizeSmall},
		{"9.9 GB", SizeSmall},
		{"10 GB", SizeMedium},
		{"30 GB", SizeMedium},
		{"30.5 GB", SizeLarge},
		{"120 GB", SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			item := model.Item{Size: tt.size}
			for _, class := range []SizeClass{SizeSmall, SizeMedium, SizeLarge} {
				assert.Equal(t, class == tt.want, Filter{Size: class}.Matches(item), "class %s", class)
			}
		})
	}
}

func TestFilter_RatingBoundary(t *testing.T) {
	items := []model.Item{
		{ID: "low", Rating: 4.4},
		{ID: "edge", Rating: 4.5},
		{ID: "high", Rating: 5},
	}
	store := NewStore(items)
	store.SetFilter(Filter{MinRating: 4.5})

	assert.Equal(t, []string{"edge", "high"}, ids(store.Visible()))
	for _, item := range store.Visible() {
		assert.GreaterOrEqual(t, item.Rating, 4.5)
	}
}

func TestFilter_PredicateOrderIndependent(t *testing.T) {
	items := fixtureItems(50)
	filters := []Filter{
		{Category: "RPG"},
		{Genres: []string{"FPS", "Puzzle"}, MinRating: 2},
		{Popularity: PopularityNew, Size: SizeSmall},
		{Category: "Acción", Genres: []string{"Terror"}, Popularity: PopularityPopular, MinRating: 1.5, Size: SizeLarge},
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for _, f := range filters {
		preds := f.Predicates()
		for range 10 {
			order := rng.Perm(len(preds))
			for _, item := range items {
				got := true
				for _, i := range order {
					got = preds[i](item) && got
				}
				require.Equal(t, f.Matches(item), got, "filter %+v item %s", f, item.ID)
			}
		}
	}
}

func TestFilter_ToggleGenre(t *testing.T) {
	f := DefaultFilter()

	f2 := f.ToggleGenre("FPS")
	assert.Equal(t, []string{"FPS"}, f2.Genres)
	assert.Empty(t, f.Genres, "original filter must not change")

	f3 := f2.ToggleGenre("Terror").ToggleGenre("FPS")
	assert.Equal(t, []string{"Terror"}, f3.Genres)
	assert.Equal(t, []string{"FPS"}, f2.Genres)
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, DefaultFilter().IsZero())
	assert.False(t, Filter{MinRating: 1}.IsZero())
	assert.False(t, Filter{Category: "RPG"}.IsZero())
	assert.False(t, Filter{Genres: []string{"FPS"}}.IsZero())
}

func TestParseFilterValues(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, AnyCategory, c)

	c, err = ParseCategory("RPG")
	require.NoError(t, err)
	assert.Equal(t, "RPG", c)

	_, err = ParseCategory("Racing")
	assert.Error(t, err)

	p, err := ParsePopularity("new")
	require.NoError(t, err)
	assert.Equal(t, PopularityNew, p)

	_, err = ParsePopularity("trending")
	assert.Error(t, err)

	s, err := ParseSizeClass("")
	require.NoError(t, err)
	assert.Equal(t, SizeAll, s)

	_, err = ParseSizeClass("huge")
	assert.Error(t, err)
}

func TestMatchesSearch(t *testing.T) {
	item := model.Item{Title: "Dragón Quest", Description: "An epic JOURNEY across seas"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"dragón", true},
		{"DRAGÓN", true},
		{"journey", true},
		{"epic journey", true},
		{"quest across", false},
		{"spaceship", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(item, tt.term))
		})
	}
}
