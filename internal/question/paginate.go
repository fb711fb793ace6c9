package question

import "strconv"

// Paginate returns the page-th window of size items. Pages start at 1; any
// window outside items, including page < 1, is empty.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + size
	if end > len(items) || end < start {
		end = len(items)
	}
	return items[start:end]
}

// ParsePage reads a page query value, defaulting to 1 when it is missing or
// not an integer.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
