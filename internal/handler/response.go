package handler

import (
	"net/http"
	"strconv"
	"time"

	"asset-management-api/internal/repository"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error   string                 `json:"error"`
	Code    string                 `json:"code,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SuccessResponse wraps the payload of a successful mutation
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ResponseHelper provides common response utilities
type ResponseHelper struct{}

// NewResponseHelper creates a new ResponseHelper instance
func NewResponseHelper() *ResponseHelper {
	return &ResponseHelper{}
}

// PaginationParams holds pagination parameters
type PaginationParams struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Offset   int `json:"offset"`
	Limit    int `json:"limit"`
}

// PaginationMeta holds pagination metadata for responses
type PaginationMeta struct {
	Page         int  `json:"page"`
	PageSize     int  `json:"page_size"`
	TotalItems   int  `json:"total_items"`
	TotalPages   int  `json:"total_pages"`
	HasNext      bool `json:"has_next"`
	HasPrevious  bool `json:"has_previous"`
	NextPage     *int `json:"next_page,omitempty"`
	PreviousPage *int `json:"previous_page,omitempty"`
}

// Default pagination constants
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPageSize     = 1
)

func (rh *ResponseHelper) ParsePaginationParams(r *http.Request) PaginationParams {
	query := r.URL.Query()

	// Parse page (default to 1)
	page := 1
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	// Parse page_size (default to DefaultPageSize)
	pageSize := DefaultPageSize
	if pageSizeStr := query.Get("page_size"); pageSizeStr != "" {
		if ps, err := strconv.Atoi(pageSizeStr); err == nil {
			if ps >= MinPageSize && ps <= MaxPageSize {
				pageSize = ps
			}
		}
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
		Limit:    pageSize,
	}
}

// ParseListParams reads pagination plus the sort and order parameters. The
// underscore-prefixed aliases are accepted for admin UI clients. Sort values
// are passed through untouched; the repository resolves them.
func (rh *ResponseHelper) ParseListParams(r *http.Request) (PaginationParams, repository.ListParams) {
	pagination := rh.ParsePaginationParams(r)
	query := r.URL.Query()

	sort := query.Get("sort")
	if sort == "" {
		sort = query.Get("_sort")
	}
	order := query.Get("order")
	if order == "" {
		order = query.Get("_order")
	}

	return pagination, repository.ListParams{
		Pagination: repository.PaginationParams{Offset: pagination.Offset, Limit: pagination.Limit},
		Sort:       repository.SortParams{Field: sort, Order: order},
	}
}

// CalculatePaginationMeta calculates pagination metadata
func (rh *ResponseHelper) CalculatePaginationMeta(params PaginationParams, totalItems int) PaginationMeta {
	totalPages := (totalItems + params.PageSize - 1) / params.PageSize // Ceiling division
	if totalPages == 0 {
		totalPages = 1
	}

	hasNext := params.Page < totalPages
	hasPrevious := params.Page > 1

	var nextPage, previousPage *int
	if hasNext {
		next := params.Page + 1
		nextPage = &next
	}
	if hasPrevious {
		prev := params.Page - 1
		previousPage = &prev
	}

	return PaginationMeta{
		Page:         params.Page,
		PageSize:     params.PageSize,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		HasNext:      hasNext,
		HasPrevious:  hasPrevious,
		NextPage:     nextPage,
		PreviousPage: previousPage,
	}
}

// CreateListResponseData creates response data for unpaginated views
func (rh *ResponseHelper) CreateListResponseData(key string, items interface{}, count int, additionalData map[string]interface{}) map[string]interface{} {
	data := map[string]interface{}{
		key:     items,
		"count": count,
	}
	for k, v := range additionalData {
		data[k] = v
	}
	return data
}

// CreatePaginatedListResponseData creates response data for paginated list operations
func (rh *ResponseHelper) CreatePaginatedListResponseData(key string, items interface{}, pagination PaginationMeta) map[string]interface{} {
	return map[string]interface{}{
		key:          items,
		"pagination": pagination,
	}
}

// CreateHealthCheckData creates health check response data
func (rh *ResponseHelper) CreateHealthCheckData(database string) map[string]interface{} {
	status := "healthy"
	if database != "up" {
		status = "degraded"
	}
	return map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"service":   "asset-management-api",
		"status":    status,
		"database":  database,
	}
}
