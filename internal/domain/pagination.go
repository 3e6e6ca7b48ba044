package domain

// PaginationParams carries the requested page and page size for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the requested page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
