package catalog

import "github.com/handiism/gamevault/internal/model"

// DefaultPageSize is the number of items per page when none is configured.
const DefaultPageSize = 12

// Page is one slice of the sorted visible set.
type Page struct {
	// Items holds at most Size items.
	Items []model.Item

	// Number is the 1-based page number after clamping.
	Number int

	// TotalPages is ceil(TotalItems/Size), and 1 when nothing is visible.
	TotalPages int

	// TotalItems is the size of the visible set.
	TotalItems int

	// Size is the page size used for slicing.
	Size int
}

// HasPrev reports whether a page precedes p.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a page follows p.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Empty reports whether nothing is visible at all.
func (p Page) Empty() bool { return p.TotalItems == 0 }

// TotalPages returns the page count for count items, never less than 1.
func TotalPages(count, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// ClampPage limits page to [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	switch {
	case page < 1:
		return 1
	case page > total:
		return total
	default:
		return page
	}
}

// Paginate slices already-sorted items into the requested page. Out of
// range page numbers are clamped rather than producing an empty page.
func Paginate(items []model.Item, size, page int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := TotalPages(len(items), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := min(start+size, len(items))
	start = min(start, end)

	return Page{
		Items:      items[start:end:end],
		Number:     page,
		TotalPages: total,
		TotalItems: len(items),
		Size:       size,
	}
}

// Arrange runs the full pipeline: stable sort by key, then paginate.
func Arrange(visible []model.Item, sorter *Sorter, key SortKey, size, page int) Page {
	return Paginate(sorter.Sort(visible, key), size, page)
}

// PageWindow returns up to width consecutive page numbers centred on
// current, shifted to stay within [1, total].
func PageWindow(current, total, width int) []int {
	if total < 1 || width < 1 {
		return nil
	}
	current = ClampPage(current, total)

	start := 1
	if total > width {
		half := width / 2
		switch {
		case current <= half+1:
			start = 1
		case current >= total-half:
			start = total - width + 1
		default:
			start = current - half
		}
	}

	n := min(width, total)
	window := make([]int, n)
	for i := range window {
		window[i] = start + i
	}
	return window
}
