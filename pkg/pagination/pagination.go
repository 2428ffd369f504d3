package pagination

import (
	"math"
	"net/url"
	"strconv"
)

// Pagination is the page metadata attached to every list envelope
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// Params represents input parameters for pagination
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// DefaultLimit is used when a caller does not ask for a page size
const DefaultLimit = 10

// MaxLimit caps the page size sent upstream
const MaxLimit = 100

// DefaultParams returns default pagination values
func DefaultParams() Params {
	return Params{
		Page:  1,
		Limit: DefaultLimit,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Apply writes page and limit into a query string
func (p Params) Apply(q url.Values) {
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
}

// NewPagination creates a Pagination from a page, page size and total count
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Normalize recomputes HasNext and HasPrev from Page and TotalPages. Servers
// have been seen to send flags that disagree with the page numbers.
func (p *Pagination) Normalize() *Pagination {
	if p == nil {
		return nil
	}
	if p.TotalPages == 0 && p.Limit > 0 && p.Total > 0 {
		p.TotalPages = int(math.Ceil(float64(p.Total) / float64(p.Limit)))
	}
	p.HasNext = p.Page < p.TotalPages
	p.HasPrev = p.Page > 1
	return p
}

// PaginatedResult represents a paginated result with items and pagination info
type PaginatedResult[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewPaginatedResult creates a new paginated result
func NewPaginatedResult[T any](items []T, pagination *Pagination) *PaginatedResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PaginatedResult[T]{
		Items:      items,
		Pagination: pagination,
	}
}
