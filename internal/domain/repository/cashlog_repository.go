package repository

import (
	"context"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/pagination"
)

// CashLogRepository manages opening and closing cash records
type CashLogRepository interface {
	List(ctx context.Context, filter entity.CashLogFilter) ([]entity.CashLog, *pagination.Pagination, error)
	GetByID(ctx context.Context, id string) (*entity.CashLog, error)
	Create(ctx context.Context, payload *entity.CreateCashLogPayload) (*entity.CashLog, error)
}
