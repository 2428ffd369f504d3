package repository

import (
	"context"
	"net/http"

	"github.com/sangkips/kasir/internal/domain/entity"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/pagination"
	"github.com/sangkips/kasir/pkg/utils"
)

type transactionRepository struct {
	client *api.Client
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(client *api.Client) domainRepo.TransactionRepository {
	return &transactionRepository{client: client}
}

func (r *transactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, *pagination.Pagination, error) {
	q, err := BranchScope(filter.Branch, filter.Page, filter.Limit)
	if err != nil {
		return nil, nil, err
	}
	setIfPresent(q, "status", string(filter.Status))

	env, err := r.client.Get(ctx, "/transactions", q)
	if err != nil {
		return nil, nil, err
	}
	return decodeList[entity.Transaction](env)
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	escaped, err := requireID(id)
	if err != nil {
		return nil, err
	}
	env, err := r.client.Get(ctx, "/transactions/"+escaped, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Transaction](env)
}

// Create posts the sale once with a fresh idempotency key. A retry by the
// caller is a new key and therefore a new sale.
func (r *transactionRepository) Create(ctx context.Context, payload *entity.CreateTransactionPayload) (*entity.Transaction, error) {
	env, err := r.client.Send(ctx, http.MethodPost, "/transactions", nil, payload,
		api.WithIdempotencyKey(utils.NewIdempotencyKey()))
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Transaction](env)
}
