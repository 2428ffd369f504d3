package repository

import (
	"context"
	"net/http"

	"github.com/sangkips/kasir/internal/domain/entity"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/pagination"
)

type expenseRepository struct {
	client *api.Client
}

// NewExpenseRepository creates a new laporan repository
func NewExpenseRepository(client *api.Client) domainRepo.ExpenseRepository {
	return &expenseRepository{client: client}
}

func (r *expenseRepository) List(ctx context.Context, filter entity.ExpenseFilter) ([]entity.StoreExpense, *pagination.Pagination, error) {
	q, err := BranchScope(filter.Branch, filter.Page, filter.Limit)
	if err != nil {
		return nil, nil, err
	}
	setIfPresent(q, "status", string(filter.Status))
	setIfPresent(q, "category", string(filter.Category))

	env, err := r.client.Get(ctx, "/laporan", q)
	if err != nil {
		return nil, nil, err
	}
	return decodeList[entity.StoreExpense](env)
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*entity.StoreExpense, error) {
	escaped, err := requireID(id)
	if err != nil {
		return nil, err
	}
	env, err := r.client.Get(ctx, "/laporan/"+escaped, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.StoreExpense](env)
}

func (r *expenseRepository) Create(ctx context.Context, payload *entity.CreateExpensePayload) (*entity.StoreExpense, error) {
	env, err := r.client.Send(ctx, http.MethodPost, "/laporan", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.StoreExpense](env)
}

func (r *expenseRepository) Update(ctx context.Context, id string, payload *entity.UpdateExpensePayload) (*entity.StoreExpense, error) {
	escaped, err := requireID(id)
	if err != nil {
		return nil, err
	}
	env, err := r.client.Send(ctx, http.MethodPut, "/laporan/"+escaped, nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.StoreExpense](env)
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	escaped, err := requireID(id)
	if err != nil {
		return err
	}
	_, err = r.client.Send(ctx, http.MethodDelete, "/laporan/"+escaped, nil, nil)
	return err
}
