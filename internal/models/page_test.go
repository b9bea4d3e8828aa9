package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i
	}

	page := Paginate(items, 1, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, page.Items)
	assert.Equal(t, 12, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)

	page = Paginate(items, 3, 5)
	assert.Equal(t, []int{10, 11}, page.Items)
}

func TestPaginatePageCountIsCeil(t *testing.T) {
	cases := []struct {
		n, p, pages int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 3, 4},
	}
	for _, tc := range cases {
		page := Paginate(make([]struct{}, tc.n), 1, tc.p)
		assert.Equal(t, tc.pages, page.TotalPages, "n=%d p=%d", tc.n, tc.p)
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := Paginate(items, 9, 2)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)

	// Nonsense inputs clamp instead of panicking.
	page = Paginate(items, 0, 0)
	assert.Equal(t, []string{"a"}, page.Items)
}
