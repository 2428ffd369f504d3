package service

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
)

type fakeTransactionRepo struct {
	mu        sync.Mutex
	listCalls int
	created   []entity.CreateTransactionPayload
	createErr error
	stored    map[string]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{stored: make(map[string]*entity.Transaction)}
}

func (r *fakeTransactionRepo) List(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, *pagination.Pagination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	return []entity.Transaction{}, pagination.NewPagination(filter.Page, filter.Limit, 0), nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.stored[id]
	if !ok {
		return nil, apperror.NewServerError(404, "Transaksi tidak ditemukan")
	}
	return tx, nil
}

func (r *fakeTransactionRepo) Create(ctx context.Context, payload *entity.CreateTransactionPayload) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, *payload)
	n := len(r.created)
	tx := &entity.Transaction{
		ID:                fmt.Sprintf("t%d", n),
		TransactionNumber: fmt.Sprintf("TRX-%03d", n),
		CustomerName:      payload.CustomerName,
		BranchName:        payload.BranchName,
		Items:             payload.Items,
		Subtotal:          payload.Subtotal,
		Total:             payload.Total,
		PaidAmount:        payload.PaidAmount,
		IsCredit:          payload.IsCredit,
		PaymentMethod:     payload.PaymentMethod,
		Status:            payload.Status,
	}
	r.stored[tx.ID] = tx
	return tx, nil
}

func (r *fakeTransactionRepo) listCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type fakeExpenseRepo struct {
	mu        sync.Mutex
	listCalls int
	pages     [][]entity.StoreExpense
	created   []entity.CreateExpensePayload
	deleted   []string
	failWith  error
}

func (r *fakeExpenseRepo) List(ctx context.Context, filter entity.ExpenseFilter) ([]entity.StoreExpense, *pagination.Pagination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if len(r.pages) == 0 {
		return []entity.StoreExpense{}, nil, nil
	}
	idx := filter.Page - 1
	if idx >= len(r.pages) {
		return []entity.StoreExpense{}, nil, nil
	}
	pg := &pagination.Pagination{Page: filter.Page, Limit: filter.Limit, TotalPages: len(r.pages)}
	return r.pages[idx], pg.Normalize(), nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id string) (*entity.StoreExpense, error) {
	return &entity.StoreExpense{ID: id}, nil
}

func (r *fakeExpenseRepo) Create(ctx context.Context, payload *entity.CreateExpensePayload) (*entity.StoreExpense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.created = append(r.created, *payload)
	return &entity.StoreExpense{ID: fmt.Sprintf("e%d", len(r.created)), Amount: payload.Amount, Category: payload.Category}, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, id string, payload *entity.UpdateExpensePayload) (*entity.StoreExpense, error) {
	return &entity.StoreExpense{ID: id}, nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeExpenseRepo) listCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listCalls
}

type fakeUploader struct{}

func (fakeUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return "https://cdn.example/" + filename, nil
}

type fakeCashLogRepo struct {
	mu        sync.Mutex
	listCalls int
	created   []entity.CreateCashLogPayload
}

func (r *fakeCashLogRepo) List(ctx context.Context, filter entity.CashLogFilter) ([]entity.CashLog, *pagination.Pagination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	return []entity.CashLog{}, nil, nil
}

func (r *fakeCashLogRepo) GetByID(ctx context.Context, id string) (*entity.CashLog, error) {
	return &entity.CashLog{ID: id}, nil
}

func (r *fakeCashLogRepo) Create(ctx context.Context, payload *entity.CreateCashLogPayload) (*entity.CashLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, *payload)
	return &entity.CashLog{ID: "c1", Type: payload.Type, Amount: payload.Amount, Date: payload.Date}, nil
}

type capturePrinter struct {
	mu   sync.Mutex
	jobs [][]byte
	err  error
}

func (p *capturePrinter) Print(ctx context.Context, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *capturePrinter) IsConnected(ctx context.Context) bool { return p.err == nil }
func (p *capturePrinter) Type() string                         { return "network" }
