package repository

import (
	"context"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/pagination"
)

// TransactionRepository reads and creates sales
type TransactionRepository interface {
	List(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, *pagination.Pagination, error)
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// Create posts exactly once. The server assigns a new id per call.
	Create(ctx context.Context, payload *entity.CreateTransactionPayload) (*entity.Transaction, error)
}
