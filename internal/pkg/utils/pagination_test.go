package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("23 items with page size 10 yields 3 pages", func(t *testing.T) {
		tests := []struct {
			page        int
			hasPrevious bool
			hasNext     bool
		}{
			{page: 1, hasPrevious: false, hasNext: true},
			{page: 2, hasPrevious: true, hasNext: true},
			{page: 3, hasPrevious: true, hasNext: false},
		}

		for _, tc := range tests {
			result := BuildPaginationResponse(23, tc.page, 10)

			assert.Equal(t, 3, result.TotalPages)
			assert.Equal(t, 23, result.TotalItems)
			assert.Equal(t, tc.hasPrevious, result.HasPrevious, "page %d", tc.page)
			assert.Equal(t, tc.hasNext, result.HasNext, "page %d", tc.page)
		}
	})

	t.Run("zero items yields zero pages and no navigation", func(t *testing.T) {
		result := BuildPaginationResponse(0, 1, 10)

		assert.Equal(t, 0, result.TotalPages)
		assert.False(t, result.HasPrevious)
		assert.False(t, result.HasNext)
	})

	t.Run("exact multiple has no partial page", func(t *testing.T) {
		result := BuildPaginationResponse(20, 2, 10)

		assert.Equal(t, 2, result.TotalPages)
		assert.True(t, result.HasPrevious)
		assert.False(t, result.HasNext)
	})

	t.Run("out of range input is normalized", func(t *testing.T) {
		result := BuildPaginationResponse(5, 0, 0)

		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 10, result.PageSize)
		assert.Equal(t, 1, result.TotalPages)
	})
}

func TestPageOffset(t *testing.T) {
	assert.Equal(t, 0, PageOffset(1, 10))
	assert.Equal(t, 10, PageOffset(2, 10))
	assert.Equal(t, 0, PageOffset(-3, 10))
	assert.Equal(t, 40, PageOffset(5, 10))
}
