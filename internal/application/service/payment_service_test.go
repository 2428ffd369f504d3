package service

import (
	"math"
	"testing"

	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/money"
	"github.com/stretchr/testify/assert"
)

func TestCalculatePayment(t *testing.T) {
	tests := []struct {
		name              string
		total, received   float64
		isCredit          bool
		paid, due, change int64
	}{
		{name: "partial kasbon", total: 50000, received: 20000, isCredit: true, paid: 20000, due: 30000},
		{name: "cash with change", total: 50000, received: 70000, paid: 50000, change: 20000},
		{name: "exact", total: 50000, received: 50000, paid: 50000},
		{name: "nothing received", total: 50000, received: 0, isCredit: true, due: 50000},
		{name: "negative received", total: 10000, received: -500, isCredit: true, due: 10000},
		{name: "rounds", total: 999.6, received: 1000.4, paid: 1000, change: 1},
		{name: "nan", total: math.NaN(), received: 1000, change: 1000},
		{name: "inf received", total: 1000, received: math.Inf(1), isCredit: true, due: 1000},
		{name: "huge received is capped", total: 50000, received: 1e19, paid: 50000, change: money.MaxAmount - 50000},
		{name: "huge total is capped", total: 1e30, received: 0, isCredit: true, due: money.MaxAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePayment(tt.total, tt.received, tt.isCredit)
			assert.Equal(t, tt.paid, got.Paid, "paid")
			assert.Equal(t, tt.due, got.Due, "due")
			assert.Equal(t, tt.change, got.Change, "change")
			assert.Equal(t, tt.isCredit, got.IsCredit)
			assert.GreaterOrEqual(t, got.Received, int64(0))
			assert.GreaterOrEqual(t, got.Total, int64(0))
		})
	}
}

func TestPaymentSummary_CreditIsNotInferred(t *testing.T) {
	underpaidCash := CalculatePayment(50000, 20000, false)
	assert.False(t, underpaidCash.IsCredit)
	assert.Equal(t, enum.PaymentMethodCash, underpaidCash.PaymentMethod())

	fullKasbon := CalculatePayment(50000, 50000, true)
	assert.Equal(t, enum.PaymentMethodKasbon, fullKasbon.PaymentMethod())
	assert.Equal(t, enum.TransactionStatusPending, fullKasbon.Status())
}

func TestPaymentSummary_Formatted(t *testing.T) {
	got := CalculatePayment(50000, 70000, false).Formatted()
	assert.Equal(t, "Rp 50.000", got.Total)
	assert.Equal(t, "Rp 20.000", got.Change)
	assert.Equal(t, "Rp 0", got.Due)

	nan := CalculatePayment(math.NaN(), math.NaN(), false).Formatted()
	assert.Equal(t, "Rp 0", nan.Total)
	assert.Equal(t, "Rp 0", nan.Received)
}
