package service

import (
	"math"

	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/pkg/money"
)

// PaymentSummary is the settlement of a declared total against the amount
// received. IsCredit is the cashier's choice and is never inferred from the
// amounts.
type PaymentSummary struct {
	Total    int64 `json:"total"`
	Received int64 `json:"received"`
	Paid     int64 `json:"paid"`
	Due      int64 `json:"due"`
	Change   int64 `json:"change"`
	IsCredit bool  `json:"is_credit"`
}

// FormattedPayment is a PaymentSummary ready for display
type FormattedPayment struct {
	Total    string `json:"total"`
	Received string `json:"received"`
	Paid     string `json:"paid"`
	Due      string `json:"due"`
	Change   string `json:"change"`
}

// CalculatePayment derives paid, due and change
func CalculatePayment(total, received float64, isCredit bool) PaymentSummary {
	total = money.Sanitize(total)
	received = money.Sanitize(received)

	paid := math.Min(received, total)
	change := math.Max(received-total, 0)
	due := math.Max(total-paid, 0)

	return PaymentSummary{
		Total:    money.Round(total),
		Received: money.Round(received),
		Paid:     money.Round(paid),
		Due:      money.Round(due),
		Change:   money.Round(change),
		IsCredit: isCredit,
	}
}

// PaymentMethod is kasbon for a credit sale, cash otherwise
func (p PaymentSummary) PaymentMethod() enum.PaymentMethod {
	return enum.PaymentMethodFor(p.IsCredit)
}

// Status is the transaction status this payment produces
func (p PaymentSummary) Status() enum.TransactionStatus {
	return enum.TransactionStatusFor(p.IsCredit)
}

// Formatted renders every amount as currency
func (p PaymentSummary) Formatted() FormattedPayment {
	return FormattedPayment{
		Total:    money.FormatAmount(p.Total),
		Received: money.FormatAmount(p.Received),
		Paid:     money.FormatAmount(p.Paid),
		Due:      money.FormatAmount(p.Due),
		Change:   money.FormatAmount(p.Change),
	}
}
