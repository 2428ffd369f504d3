package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() *entity.CreateTransactionPayload {
	return &entity.CreateTransactionPayload{
		CustomerName: "Budi",
		BranchName:   "Pusat",
		Items: []entity.TransactionItem{
			{ProductID: "p1", ProductName: "Gula", Quantity: 2, Price: 15000, Subtotal: 30000, Unit: "kg"},
		},
		Subtotal:   30000,
		Total:      30000,
		PaidAmount: 30000,
	}
}

func TestApplyTransactionDefaults(t *testing.T) {
	cash := ApplyTransactionDefaults(entity.CreateTransactionPayload{})
	require.NotNil(t, cash.Tax)
	assert.Equal(t, int64(0), *cash.Tax)
	assert.Equal(t, enum.TransactionStatusCompleted, cash.Status)
	assert.Equal(t, enum.PaymentMethodCash, cash.PaymentMethod)

	credit := ApplyTransactionDefaults(entity.CreateTransactionPayload{IsCredit: true})
	assert.Equal(t, enum.TransactionStatusPending, credit.Status)
	assert.Equal(t, enum.PaymentMethodKasbon, credit.PaymentMethod)

	tax := int64(1100)
	explicit := ApplyTransactionDefaults(entity.CreateTransactionPayload{Tax: &tax, Status: enum.TransactionStatusCompleted, IsCredit: true})
	assert.Equal(t, int64(1100), *explicit.Tax)
	assert.Equal(t, enum.TransactionStatusCompleted, explicit.Status)
}

func TestValidateTransactionPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *entity.CreateTransactionPayload)
		field  string
	}{
		{"blank branch", func(p *entity.CreateTransactionPayload) { p.BranchName = "  " }, "branch_name"},
		{"no items", func(p *entity.CreateTransactionPayload) { p.Items = nil }, "items"},
		{"zero quantity", func(p *entity.CreateTransactionPayload) { p.Items[0].Quantity = 0 }, "items[0].quantity"},
		{"bad subtotal", func(p *entity.CreateTransactionPayload) { p.Items[0].Subtotal = 1 }, "items[0].subtotal"},
		{"negative total", func(p *entity.CreateTransactionPayload) { p.Total = -1 }, "total"},
		{"unknown status", func(p *entity.CreateTransactionPayload) { p.Status = "void" }, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ApplyTransactionDefaults(*validPayload())
			tt.mutate(&p)

			err := ValidateTransactionPayload(&p)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}

	p := ApplyTransactionDefaults(*validPayload())
	assert.NoError(t, ValidateTransactionPayload(&p))
}

func TestTransactionService_Submit(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo, 10, time.Second)
	ctx := context.Background()

	payload := validPayload()
	payload.IsCredit = true
	tx, err := svc.Submit(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, "TRX-001", tx.Number())

	require.Len(t, repo.created, 1)
	sent := repo.created[0]
	assert.Equal(t, enum.TransactionStatusPending, sent.Status)
	assert.Equal(t, enum.PaymentMethodKasbon, sent.PaymentMethod)
	require.NotNil(t, sent.Tax)
	assert.Nil(t, payload.Tax, "caller payload is not modified")
}

func TestTransactionService_SubmitValidationSendsNothing(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo, 10, time.Second)

	payload := validPayload()
	payload.Items = nil
	_, err := svc.Submit(context.Background(), payload)
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, repo.created)
}

func TestTransactionService_SubmitInvalidatesList(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo, 10, time.Second)
	ctx := context.Background()
	filter := entity.TransactionFilter{Branch: "Pusat"}

	_, err := svc.ListTransactions(ctx, filter)
	require.NoError(t, err)
	_, err = svc.ListTransactions(ctx, entity.TransactionFilter{Branch: "Pusat", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCount(), "defaults produce the same cache key")

	_, err = svc.Submit(ctx, validPayload())
	require.NoError(t, err)

	_, err = svc.ListTransactions(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCount())
}

func TestTransactionService_FailedSubmitKeepsCache(t *testing.T) {
	repo := newFakeTransactionRepo()
	repo.createErr = apperror.NewServerError(400, "Stok tidak cukup")
	svc := NewTransactionService(repo, 10, time.Second)
	ctx := context.Background()
	filter := entity.TransactionFilter{Branch: "Pusat"}

	_, _ = svc.ListTransactions(ctx, filter)
	_, err := svc.Submit(ctx, validPayload())
	require.Error(t, err)
	assert.Equal(t, "Stok tidak cukup", apperror.GetAppError(err).Message)

	_, _ = svc.ListTransactions(ctx, filter)
	assert.Equal(t, 1, repo.listCount())
}

func TestTransactionService_ListRequiresBranch(t *testing.T) {
	repo := newFakeTransactionRepo()
	svc := NewTransactionService(repo, 10, time.Second)

	_, err := svc.ListTransactions(context.Background(), entity.TransactionFilter{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, 0, repo.listCount())
}
