package catalog

import (
	"slices"

	"github.com/handiism/gamevault/internal/model"
	"golang.org/x/text/language"
)

// Store holds the item collection and the current browse state: search
// term, filter, sort key and page. Derived state (the visible set and its
// sorted order) is rebuilt from scratch whenever an input changes.
//
// A Store is not safe for concurrent use; callers drive it from a single
// event loop.
type Store struct {
	items []model.Item

	search   string
	filter   Filter
	sortKey  SortKey
	pageSize int
	page     int
	locale   language.Tag

	sorter  *Sorter
	visible []model.Item
	sorted  []model.Item
}

// Option configures a Store.
type Option func(*Store)

// WithPageSize sets the number of items per page. Non-positive values
// fall back to DefaultPageSize.
func WithPageSize(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLocale sets the language used for alphabetical ordering.
func WithLocale(tag language.Tag) Option {
	return func(s *Store) {
		s.locale = tag
	}
}

// WithSortKey sets the initial sort key.
func WithSortKey(key SortKey) Option {
	return func(s *Store) {
		s.sortKey = key
	}
}

// NewStore creates a Store over a copy of items with the default filter,
// newest-first ordering and page 1.
func NewStore(items []model.Item, opts ...Option) *Store {
	s := &Store{
		items:    slices.Clone(items),
		filter:   DefaultFilter(),
		sortKey:  SortNewest,
		pageSize: DefaultPageSize,
		page:     1,
		locale:   language.Spanish,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.sorter = NewSorter(s.locale)
	s.recompute()
	return s
}

// Items returns a copy of the full collection in its original order.
func (s *Store) Items() []model.Item {
	return slices.Clone(s.items)
}

// Len returns the size of the full collection.
func (s *Store) Len() int {
	return len(s.items)
}

// Lookup finds an item of the full collection by ID.
func (s *Store) Lookup(id string) (model.Item, bool) {
	i := slices.IndexFunc(s.items, func(item model.Item) bool { return item.ID == id })
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// SearchTerm returns the current search term.
func (s *Store) SearchTerm() string {
	return s.search
}

// SetSearchTerm replaces the search term and returns to page 1.
func (s *Store) SetSearchTerm(term string) {
	s.search = term
	s.page = 1
	s.recompute()
}

// Filter returns a copy of the active filter.
func (s *Store) Filter() Filter {
	f := s.filter
	f.Genres = slices.Clone(f.Genres)
	return f
}

// SetFilter replaces the active filter and returns to page 1.
func (s *Store) SetFilter(f Filter) {
	f.Genres = slices.Clone(f.Genres)
	s.filter = f
	s.page = 1
	s.recompute()
}

// ResetFilter restores DefaultFilter and returns to page 1.
func (s *Store) ResetFilter() {
	s.SetFilter(DefaultFilter())
}

// SortKey returns the active sort key.
func (s *Store) SortKey() SortKey {
	return s.sortKey
}

// SetSortKey changes the ordering and returns to page 1.
func (s *Store) SetSortKey(key SortKey) {
	s.sortKey = key
	s.page = 1
	s.recompute()
}

// PageSize returns the number of items per page.
func (s *Store) PageSize() int {
	return s.pageSize
}

// Page returns the current, already clamped, page number.
func (s *Store) Page() int {
	return s.page
}

// SetPage moves to page n, clamped to the available range.
func (s *Store) SetPage(n int) {
	s.page = ClampPage(n, TotalPages(len(s.sorted), s.pageSize))
}

// NextPage advances one page if possible.
func (s *Store) NextPage() {
	s.SetPage(s.page + 1)
}

// PrevPage goes back one page if possible.
func (s *Store) PrevPage() {
	s.SetPage(s.page - 1)
}

// Visible returns the items passing the search term and filter, in
// collection order.
func (s *Store) Visible() []model.Item {
	return slices.Clone(s.visible)
}

// VisibleCount returns the size of the visible set.
func (s *Store) VisibleCount() int {
	return len(s.visible)
}

// View returns the current page of the sorted visible set.
func (s *Store) View() Page {
	return Paginate(s.sorted, s.pageSize, s.page)
}

// Highlights summarises the full collection for the home view.
func (s *Store) Highlights() Highlights {
	return HighlightsOf(s.items)
}

func (s *Store) recompute() {
	visible := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if MatchesSearch(item, s.search) && s.filter.Matches(item) {
			visible = append(visible, item)
		}
	}
	s.visible = visible
	s.sorted = s.sorter.Sort(visible, s.sortKey)
	s.page = ClampPage(s.page, TotalPages(len(s.sorted), s.pageSize))
}
