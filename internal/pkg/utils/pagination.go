package utils

import (
	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/dto/responses"
)

// NormalizePageParams clamps out-of-range paging input. A page below one
// becomes the first page; a non-positive page size falls back to the default
// so the page count division below can never fault.
func NormalizePageParams(page, pageSize int) (int, int) {
	if page < 1 {
		page = constvars.DefaultPageNumber
	}
	if pageSize < 1 {
		pageSize = constvars.DefaultPageSize
	}
	return page, pageSize
}

func BuildPaginationResponse(total, page, pageSize int) *responses.Pagination {
	page, pageSize = NormalizePageParams(page, pageSize)

	totalPages := (total + pageSize - 1) / pageSize

	return &responses.Pagination{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// PageOffset converts one-based paging input into a SQL OFFSET.
func PageOffset(page, pageSize int) int {
	page, pageSize = NormalizePageParams(page, pageSize)
	return (page - 1) * pageSize
}
