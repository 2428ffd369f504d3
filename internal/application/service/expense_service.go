package service

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/sangkips/kasir/internal/application/liststore"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
	"github.com/sangkips/kasir/pkg/validator"
)

// ExpenseService manages the branch expense reports (laporan)
type ExpenseService struct {
	expenseRepo  repository.ExpenseRepository
	uploader     repository.ReceiptUploader
	list         *liststore.Store[entity.StoreExpense]
	defaultLimit int
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository, uploader repository.ReceiptUploader, defaultLimit int, fetchTimeout time.Duration) *ExpenseService {
	s := &ExpenseService{
		expenseRepo:  expenseRepo,
		uploader:     uploader,
		defaultLimit: defaultLimit,
	}
	s.list = liststore.New("laporan", s.fetchPage, liststore.WithFetchTimeout(fetchTimeout))
	return s
}

func (s *ExpenseService) fetchPage(ctx context.Context, key liststore.Key) ([]entity.StoreExpense, *pagination.Pagination, error) {
	return s.expenseRepo.List(ctx, entity.ExpenseFilter{
		Branch:   key.Branch,
		Page:     key.Page,
		Limit:    key.Limit,
		Status:   enum.ApprovalStatus(key.Status),
		Category: enum.ExpenseCategory(key.Category),
	})
}

// ListExpenses returns a page of the branch's laporan
func (s *ExpenseService) ListExpenses(ctx context.Context, filter entity.ExpenseFilter) (*pagination.PaginatedResult[entity.StoreExpense], error) {
	branch := strings.TrimSpace(filter.Branch)
	if branch == "" {
		return nil, apperror.NewRequiredError("branch")
	}
	params := pageParams(filter.Page, filter.Limit, s.defaultLimit)
	return paginated(s.list.Query(ctx, liststore.Key{
		Branch:   branch,
		Page:     params.Page,
		Limit:    params.Limit,
		Status:   string(filter.Status),
		Category: string(filter.Category),
	}))
}

// GetExpense retrieves a laporan by ID
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (*entity.StoreExpense, error) {
	return s.expenseRepo.GetByID(ctx, id)
}

// CreateExpense records a new laporan. Date defaults to today.
func (s *ExpenseService) CreateExpense(ctx context.Context, payload *entity.CreateExpensePayload) (*entity.StoreExpense, error) {
	if payload.Date == "" {
		payload.Date = time.Now().Format(DateLayout)
	}
	payload.BranchName = strings.TrimSpace(payload.BranchName)
	if err := validator.ValidateStruct(payload); err != nil {
		return nil, err
	}

	expense, err := liststore.MutateWith(ctx, s.list, payload.BranchName, func(ctx context.Context) (*entity.StoreExpense, error) {
		return s.expenseRepo.Create(ctx, payload)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[laporan] created %s branch=%q category=%s amount=%d", expense.ID, payload.BranchName, payload.Category, payload.Amount)
	return expense, nil
}

// UpdateExpense changes a laporan. The server decides whether a reviewed
// record may still be edited.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, payload *entity.UpdateExpensePayload) (*entity.StoreExpense, error) {
	payload.BranchName = strings.TrimSpace(payload.BranchName)
	if err := validator.ValidateStruct(payload); err != nil {
		return nil, err
	}
	return liststore.MutateWith(ctx, s.list, payload.BranchName, func(ctx context.Context) (*entity.StoreExpense, error) {
		return s.expenseRepo.Update(ctx, id, payload)
	})
}

// DeleteExpense removes a laporan and refreshes the branch's pages
func (s *ExpenseService) DeleteExpense(ctx context.Context, branch, id string) error {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return apperror.NewRequiredError("branch")
	}
	return s.list.Mutate(ctx, branch, func(ctx context.Context) error {
		return s.expenseRepo.Delete(ctx, id)
	})
}

// UploadReceipt stores a receipt photo and returns its URL
func (s *ExpenseService) UploadReceipt(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.uploader.Upload(ctx, filename, r)
}

// AllExpenses walks every page of the branch's laporan, bypassing the cache
func (s *ExpenseService) AllExpenses(ctx context.Context, filter entity.ExpenseFilter) ([]entity.StoreExpense, error) {
	filter.Limit = pagination.MaxLimit
	filter.Page = 1

	var all []entity.StoreExpense
	for {
		items, page, err := s.expenseRepo.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if page == nil || !page.HasNext || len(items) == 0 {
			return all, nil
		}
		filter.Page++
	}
}
