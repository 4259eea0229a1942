package repository

const (
	// DefaultPaginationLimit is the default number of items per page.
	DefaultPaginationLimit = 10
	maxPaginationLimit     = 100
)

// Pagination represents 1-indexed page-number pagination.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the pagination to sane values: page defaults to 1 and the
// limit to DefaultPaginationLimit, capped at the maximum page size.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPaginationLimit
	}
	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}
	return p
}

// Skip returns the number of documents preceding the requested page.
func (p Pagination) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}
