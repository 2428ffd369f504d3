package repository

import (
	"context"
	"net/http"

	"github.com/sangkips/kasir/internal/domain/entity"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/pagination"
)

type cashLogRepository struct {
	client *api.Client
}

// NewCashLogRepository creates a new cash log repository
func NewCashLogRepository(client *api.Client) domainRepo.CashLogRepository {
	return &cashLogRepository{client: client}
}

func (r *cashLogRepository) List(ctx context.Context, filter entity.CashLogFilter) ([]entity.CashLog, *pagination.Pagination, error) {
	q, err := BranchScope(filter.Branch, filter.Page, filter.Limit)
	if err != nil {
		return nil, nil, err
	}
	setIfPresent(q, "type", string(filter.Type))
	setIfPresent(q, "status", string(filter.Status))

	env, err := r.client.Get(ctx, "/cashlog", q)
	if err != nil {
		return nil, nil, err
	}
	return decodeList[entity.CashLog](env)
}

func (r *cashLogRepository) GetByID(ctx context.Context, id string) (*entity.CashLog, error) {
	escaped, err := requireID(id)
	if err != nil {
		return nil, err
	}
	env, err := r.client.Get(ctx, "/cashlog/"+escaped, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.CashLog](env)
}

func (r *cashLogRepository) Create(ctx context.Context, payload *entity.CreateCashLogPayload) (*entity.CashLog, error) {
	env, err := r.client.Send(ctx, http.MethodPost, "/cashlog", nil, payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.CashLog](env)
}
