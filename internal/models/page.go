package models

// PageQuery carries the standard pagination/sort query parameters.
type PageQuery struct {
	Page          int    `json:"page"`
	Size          int    `json:"size"`
	SortBy        string `json:"sortBy"`
	SortDirection string `json:"sortDirection"` // "asc" or "desc"
}

// Page is the paginated response envelope.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"` // 1-indexed
	Size       int `json:"size"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices items into page k of size per, 1-indexed. Out-of-range pages
// yield an empty item list with the envelope counts intact.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = 1
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
