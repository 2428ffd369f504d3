package service

import (
	"context"
	"fmt"
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

// TransactionService submits sales and serves the branch transaction list
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	list            *liststore.Store[entity.Transaction]
	defaultLimit    int
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, defaultLimit int, fetchTimeout time.Duration) *TransactionService {
	s := &TransactionService{
		transactionRepo: transactionRepo,
		defaultLimit:    defaultLimit,
	}
	s.list = liststore.New("transactions", s.fetchPage, liststore.WithFetchTimeout(fetchTimeout))
	return s
}

func (s *TransactionService) fetchPage(ctx context.Context, key liststore.Key) ([]entity.Transaction, *pagination.Pagination, error) {
	return s.transactionRepo.List(ctx, entity.TransactionFilter{
		Branch: key.Branch,
		Page:   key.Page,
		Limit:  key.Limit,
		Status: enum.TransactionStatus(key.Status),
	})
}

// ListTransactions returns a page of the branch's transactions, from cache
// when possible
func (s *TransactionService) ListTransactions(ctx context.Context, filter entity.TransactionFilter) (*pagination.PaginatedResult[entity.Transaction], error) {
	branch := strings.TrimSpace(filter.Branch)
	if branch == "" {
		return nil, apperror.NewRequiredError("branch")
	}
	params := pageParams(filter.Page, filter.Limit, s.defaultLimit)
	return paginated(s.list.Query(ctx, liststore.Key{
		Branch: branch,
		Page:   params.Page,
		Limit:  params.Limit,
		Status: string(filter.Status),
	}))
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (*entity.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

// Submit fills in server defaults, validates and posts the sale exactly once.
// On success the branch's transaction pages are invalidated.
func (s *TransactionService) Submit(ctx context.Context, payload *entity.CreateTransactionPayload) (*entity.Transaction, error) {
	if payload == nil {
		return nil, apperror.NewRequiredError("payload")
	}
	prepared := ApplyTransactionDefaults(*payload)
	prepared.BranchName = strings.TrimSpace(prepared.BranchName)
	if err := ValidateTransactionPayload(&prepared); err != nil {
		return nil, err
	}

	tx, err := liststore.MutateWith(ctx, s.list, prepared.BranchName, func(ctx context.Context) (*entity.Transaction, error) {
		return s.transactionRepo.Create(ctx, &prepared)
	})
	if err != nil {
		log.Printf("[transaction] submit failed branch=%q total=%d: %v", prepared.BranchName, prepared.Total, err)
		return nil, err
	}

	log.Printf("[transaction] submitted %s branch=%q total=%d status=%s", tx.Number(), prepared.BranchName, prepared.Total, prepared.Status)
	return tx, nil
}

// ApplyTransactionDefaults sets the values the server would otherwise assume:
// tax 0, status pending for kasbon and completed for cash, and the payment
// method matching the credit flag.
func ApplyTransactionDefaults(payload entity.CreateTransactionPayload) entity.CreateTransactionPayload {
	if payload.Tax == nil {
		zero := int64(0)
		payload.Tax = &zero
	}
	if payload.Status == "" {
		payload.Status = enum.TransactionStatusFor(payload.IsCredit)
	}
	if payload.PaymentMethod == "" {
		payload.PaymentMethod = enum.PaymentMethodFor(payload.IsCredit)
	}
	return payload
}

// ValidateTransactionPayload checks required fields, non-negative amounts and
// that every line's subtotal equals price times quantity
func ValidateTransactionPayload(payload *entity.CreateTransactionPayload) error {
	if err := validator.ValidateStruct(payload); err != nil {
		return err
	}

	var fieldErrors []apperror.FieldError
	if payload.Tax != nil && *payload.Tax < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "tax", Message: "tax must not be negative"})
	}
	for i, item := range payload.Items {
		if err := item.CheckSubtotal(); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].subtotal", i),
				Message: err.Error(),
			})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}
