package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_Invariants(t *testing.T) {
	for _, count := range []int{0, 1, 11, 12, 13, 24, 50} {
		for _, size := range []int{1, 5, 12} {
			items := fixtureItems(count)
			total := TotalPages(count, size)

			sum := 0
			for n := 1; n <= total; n++ {
				page := Paginate(items, size, n)
				require.Equal(t, n, page.Number)
				require.LessOrEqual(t, len(page.Items), size)
				sum += len(page.Items)

				if n == total && count > 0 {
					last := count - (total-1)*size
					assert.Equal(t, last, len(page.Items))
					assert.GreaterOrEqual(t, last, 1)
					assert.LessOrEqual(t, last, size)
				}
			}
			assert.Equal(t, count, sum, "count=%d size=%d", count, size)
		}
	}
}

func TestPaginate_EmptySetHasOnePage(t *testing.T) {
	page := Paginate(nil, 12, 3)

	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.True(t, page.Empty())
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestPaginate_ClampsOutOfRange(t *testing.T) {
	items := fixtureItems(5)

	page := Paginate(items, 12, 3)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Items, 5)

	page = Paginate(fixtureItems(30), 12, 0)
	assert.Equal(t, 1, page.Number)

	page = Paginate(fixtureItems(30), 12, 99)
	assert.Equal(t, 3, page.Number)
	assert.Len(t, page.Items, 6)
	assert.True(t, page.HasPrev())
}

func TestPaginate_DefaultSize(t *testing.T) {
	page := Paginate(fixtureItems(30), 0, 1)
	assert.Equal(t, DefaultPageSize, page.Size)
	assert.Len(t, page.Items, DefaultPageSize)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name           string
		current, total int
		want           []int
	}{
		{"few pages", 2, 3, []int{1, 2, 3}},
		{"start", 1, 10, []int{1, 2, 3, 4, 5, 6, 7}},
		{"near start", 4, 10, []int{1, 2, 3, 4, 5, 6, 7}},
		{"middle", 5, 10, []int{2, 3, 4, 5, 6, 7, 8}},
		{"near end", 7, 10, []int{4, 5, 6, 7, 8, 9, 10}},
		{"end", 10, 10, []int{4, 5, 6, 7, 8, 9, 10}},
		{"clamped", 42, 10, []int{4, 5, 6, 7, 8, 9, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total, 7))
		})
	}

	assert.Nil(t, PageWindow(1, 0, 7))
}
