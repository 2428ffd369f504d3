package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpenseService(repo *fakeExpenseRepo) *ExpenseService {
	return NewExpenseService(repo, fakeUploader{}, 10, time.Second)
}

func TestExpenseService_CreateRefetchesBranch(t *testing.T) {
	repo := &fakeExpenseRepo{}
	svc := newExpenseService(repo)
	ctx := context.Background()

	_, err := svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "B"})
	require.NoError(t, err)
	_, err = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "C"})
	require.NoError(t, err)
	_, err = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "B"})
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCount())

	created, err := svc.CreateExpense(ctx, &entity.CreateExpensePayload{
		BranchName:  "B",
		Category:    enum.ExpenseCategoryListrik,
		Amount:      250000,
		CashierName: "Sari",
	})
	require.NoError(t, err)
	assert.Equal(t, "e1", created.ID)
	assert.NotEmpty(t, repo.created[0].Date)

	_, _ = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "B"})
	assert.Equal(t, 3, repo.listCount())
	_, _ = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "C"})
	assert.Equal(t, 3, repo.listCount())
}

func TestExpenseService_CreateValidates(t *testing.T) {
	repo := &fakeExpenseRepo{}
	svc := newExpenseService(repo)

	_, err := svc.CreateExpense(context.Background(), &entity.CreateExpensePayload{
		BranchName:  "B",
		Category:    "hiburan",
		CashierName: "Sari",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Empty(t, repo.created)
}

func TestExpenseService_DeleteInvalidates(t *testing.T) {
	repo := &fakeExpenseRepo{}
	svc := newExpenseService(repo)
	ctx := context.Background()

	_, _ = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "B"})
	require.NoError(t, svc.DeleteExpense(ctx, "B", "e9"))
	_, _ = svc.ListExpenses(ctx, entity.ExpenseFilter{Branch: "B"})

	assert.Equal(t, []string{"e9"}, repo.deleted)
	assert.Equal(t, 2, repo.listCount())

	assert.ErrorIs(t, svc.DeleteExpense(ctx, " ", "e9"), apperror.ErrValidation)
}

func TestExpenseService_UploadReceipt(t *testing.T) {
	url, err := newExpenseService(&fakeExpenseRepo{}).UploadReceipt(context.Background(), "nota.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/nota.jpg", url)
}

func TestExpenseService_AllExpensesWalksPages(t *testing.T) {
	repo := &fakeExpenseRepo{pages: [][]entity.StoreExpense{
		{{ID: "e1", Amount: 100}, {ID: "e2", Amount: 200}},
		{{ID: "e3", Amount: 300}},
	}}

	all, err := newExpenseService(repo).AllExpenses(context.Background(), entity.ExpenseFilter{Branch: "B"})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 2, repo.listCount())
}
