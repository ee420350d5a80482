package repository

// PaginationParams holds pagination parameters for repository queries
type PaginationParams struct {
	Offset int
	Limit  int
}

// SortParams carries the caller supplied sort field and direction. Both are
// untrusted and resolved against an allow-list before use.
type SortParams struct {
	Field string
	Order string
}

// ListParams combines pagination and sorting for listing queries
type ListParams struct {
	Pagination PaginationParams
	Sort       SortParams
}

// PaginatedResult holds paginated query results
type PaginatedResult[T any] struct {
	Items      []T
	TotalCount int
}
