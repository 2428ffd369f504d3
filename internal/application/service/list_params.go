package service

import (
	"github.com/sangkips/kasir/internal/application/liststore"
	"github.com/sangkips/kasir/pkg/pagination"
)

// pageParams applies the configured default page size before validating,
// so identical screens always produce identical cache keys.
func pageParams(page, limit, defaultLimit int) pagination.Params {
	if limit <= 0 {
		limit = defaultLimit
	}
	params := pagination.Params{Page: page, Limit: limit}
	params.Validate()
	return params
}

// paginated unwraps a list store result into the shape handlers return
func paginated[T any](res liststore.Result[T]) (*pagination.PaginatedResult[T], error) {
	if res.Err != nil {
		return nil, res.Err
	}
	return pagination.NewPaginatedResult(res.Records, res.Pagination), nil
}
