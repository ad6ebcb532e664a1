package queries

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxOffset is the largest offset the ledger store accepts. Pages past it read as empty.
	MaxOffset = math.MaxInt32
)

// ValidateLimit ensures limit is within acceptable bounds
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func ValidatePage(page int) int {
	if page <= 0 {
		return DefaultPage
	}
	return page
}

func offsetFor(page, limit int) int {
	if page-1 > MaxOffset/limit {
		return MaxOffset
	}
	return (page - 1) * limit
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
