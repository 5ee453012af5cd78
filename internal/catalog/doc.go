// Package catalog implements the browse pipeline over an in-memory item
// collection: search and filter predicates, stable sorting, pagination,
// and the Store that ties them together.
//
// Every mutating Store operation recomputes the derived view before it
// returns, so the visible set and current page always reflect the latest
// search term, filter and sort key:
//
//	store := catalog.NewStore(items, catalog.WithPageSize(12))
//	store.SetSearchTerm("dragon")
//	store.SetFilter(catalog.Filter{Category: "RPG", MinRating: 4})
//	page := store.View()
//	fmt.Printf("page %d/%d: %d items\n", page.Number, page.TotalPages, len(page.Items))
package catalog
