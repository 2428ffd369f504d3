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

func TestCashLogService_OpenAndClose(t *testing.T) {
	repo := &fakeCashLogRepo{}
	svc := NewCashLogService(repo, 10, time.Second)
	ctx := context.Background()

	opened, err := svc.OpenCash(ctx, cashier, 500000, "")
	require.NoError(t, err)
	assert.Equal(t, enum.CashLogOpening, opened.Type)

	_, err = svc.CloseCash(ctx, cashier, 1250000, "setor bank")
	require.NoError(t, err)

	require.Len(t, repo.created, 2)
	closing := repo.created[1]
	assert.Equal(t, enum.CashLogClosing, closing.Type)
	assert.Equal(t, "Pusat", closing.BranchName)
	assert.Equal(t, "Sari", closing.CashierName)
	assert.Equal(t, time.Now().Format(DateLayout), closing.Date)
}

func TestCashLogService_CreateInvalidatesList(t *testing.T) {
	repo := &fakeCashLogRepo{}
	svc := NewCashLogService(repo, 10, time.Second)
	ctx := context.Background()
	filter := entity.CashLogFilter{Branch: "Pusat", Type: enum.CashLogOpening}

	_, _ = svc.ListCashLogs(ctx, filter)
	_, _ = svc.ListCashLogs(ctx, filter)
	assert.Equal(t, 1, repo.listCalls)

	_, err := svc.OpenCash(ctx, cashier, 100000, "")
	require.NoError(t, err)
	_, _ = svc.ListCashLogs(ctx, filter)
	assert.Equal(t, 2, repo.listCalls)
}

func TestCashLogService_RequiresUser(t *testing.T) {
	svc := NewCashLogService(&fakeCashLogRepo{}, 10, time.Second)

	_, err := svc.OpenCash(context.Background(), nil, 1000, "")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.OpenCash(context.Background(), &entity.CurrentUser{Name: "Sari"}, 1000, "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
