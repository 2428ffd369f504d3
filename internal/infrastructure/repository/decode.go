package repository

import (
	"encoding/json"
	"errors"

	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
)

var errMissingData = errors.New("success envelope without data")

// decodeList reads a list envelope. A success with no data is an empty page.
func decodeList[T any](env *api.Envelope) ([]T, *pagination.Pagination, error) {
	items := []T{}
	if env.HasData() {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, nil, apperror.NewUnreadableResponseError(0, err)
		}
		if items == nil {
			items = []T{}
		}
	}
	return items, env.Pagination.Normalize(), nil
}

// decodeOne reads a detail or create envelope. Missing data is unreadable,
// never a zero value.
func decodeOne[T any](env *api.Envelope) (*T, error) {
	if !env.HasData() {
		return nil, apperror.NewUnreadableResponseError(0, errMissingData)
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, apperror.NewUnreadableResponseError(0, err)
	}
	return &out, nil
}
