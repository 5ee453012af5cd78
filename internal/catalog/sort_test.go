package catalog

import (
	"testing"
	"time"

	"github.com/handiism/gamevault/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSorter_Comparators(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	items := []model.Item{
		{ID: "a", Title: "beta", Downloads: 10, Rating: 3, ReleaseDate: d(2)},
		{ID: "b", Title: "Alpha", Downloads: 30, Rating: 5, ReleaseDate: d(1)},
		{ID: "c", Title: "gamma", Downloads: 20, Rating: 4, ReleaseDate: d(3)},
	}
	sorter := NewSorter(language.English)

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortNewest, []string{"c", "a", "b"}},
		{SortMostDownloaded, []string{"b", "c", "a"}},
		{SortHighestRated, []string{"b", "c", "a"}},
		{SortAlphabetical, []string{"b", "a", "c"}},
		{SortKey("unknown"), []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(sorter.Sort(items, tt.key)))
		})
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(items), "input must not be reordered")
}

func TestSorter_LocaleAwareTitles(t *testing.T) {
	items := []model.Item{
		{ID: "z", Title: "Zorro"},
		{ID: "e", Title: "Épica"},
		{ID: "a", Title: "árbol"},
		{ID: "b", Title: "Barco"},
	}

	got := NewSorter(language.Spanish).Sort(items, SortAlphabetical)

	assert.Equal(t, []string{"a", "b", "e", "z"}, ids(got))
}

func TestSorter_Stable(t *testing.T) {
	items := fixtureItems(50)
	sorter := NewSorter(language.Spanish)

	for _, key := range SortKeys {
		t.Run(string(key), func(t *testing.T) {
			sorted := sorter.Sort(items, key)
			require.Len(t, sorted, len(items))

			pos := make(map[string]int, len(items))
			for i, item := range items {
				pos[item.ID] = i
			}
			cmpFn := sorter.comparator(key)
			for i := 1; i < len(sorted); i++ {
				prev, cur := sorted[i-1], sorted[i]
				c := cmpFn(prev, cur)
				require.LessOrEqual(t, c, 0, "out of order at %d", i)
				if c == 0 {
					assert.Less(t, pos[prev.ID], pos[cur.ID], "tie between %s and %s not stable", prev.ID, cur.ID)
				}
			}
		})
	}
}

func TestSortKey_ParseAndCycle(t *testing.T) {
	for alias, want := range map[string]SortKey{
		"":                SortNewest,
		"most-downloaded": SortMostDownloaded,
		"popular":         SortMostDownloaded,
		"highest-rated":   SortHighestRated,
		"alphabetical":    SortAlphabetical,
	} {
		got, err := ParseSortKey(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, want, got, alias)
	}

	_, err := ParseSortKey("price")
	assert.Error(t, err)

	assert.Equal(t, SortMostDownloaded, SortNewest.Next())
	assert.Equal(t, SortNewest, SortAlphabetical.Next())
	assert.Equal(t, "A-Z", SortAlphabetical.Label())
}
