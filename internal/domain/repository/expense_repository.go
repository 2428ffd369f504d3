package repository

import (
	"context"
	"io"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/pagination"
)

// ExpenseRepository manages branch expense reports (laporan)
type ExpenseRepository interface {
	List(ctx context.Context, filter entity.ExpenseFilter) ([]entity.StoreExpense, *pagination.Pagination, error)
	GetByID(ctx context.Context, id string) (*entity.StoreExpense, error)
	Create(ctx context.Context, payload *entity.CreateExpensePayload) (*entity.StoreExpense, error)
	Update(ctx context.Context, id string, payload *entity.UpdateExpensePayload) (*entity.StoreExpense, error)
	Delete(ctx context.Context, id string) error
}

// ReceiptUploader stores a photo of an expense receipt and returns its URL
type ReceiptUploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
