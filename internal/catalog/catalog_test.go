package catalog

import (
	"fmt"
	"time"

	"github.com/handiism/gamevault/internal/model"
)

// fixtureItems builds n deterministic items. Download counts repeat every
// ten items so ties are common.
func fixtureItems(n int) []model.Item {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]model.Item, n)
	for i := range items {
		items[i] = model.Item{
			ID:          fmt.Sprintf("item-%02d", i),
			Title:       fmt.Sprintf("Game %02d", i),
			Description: fmt.Sprintf("Description for game number %d", i),
			Category:    model.Categories[i%len(model.Categories)],
			Genres:      []string{model.Genres[i%len(model.Genres)], model.Genres[(i+3)%len(model.Genres)]},
			Rating:      float64(i%11) * 0.5,
			Downloads:   int64((i*7)%10) * 1000,
			Size:        fmt.Sprintf("%d GB", 1+(i*3)%50),
			ReleaseDate: base.AddDate(0, 0, (i*13)%40),
			Featured:    i < 6,
			Popular:     i%3 == 0,
			New:         i%5 == 0,
		}
	}
	return items
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
