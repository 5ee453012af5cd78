package catalog

import (
	"strings"

	"github.com/handiism/gamevault/internal/model"
	"golang.org/x/text/cases"
)

// MatchesSearch reports whether term occurs in the item's title or
// description, ignoring case. An empty term matches everything.
func MatchesSearch(item model.Item, term string) bool {
	if term == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(term)
	return strings.Contains(fold.String(item.Title), needle) ||
		strings.Contains(fold.String(item.Description), needle)
}
