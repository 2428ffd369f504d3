package service

import (
	"context"
	"log"
	"strings"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/apperror"
)

// CheckoutService settles a cart: payment, submission, invalidation, cart
// clear and receipt, in that order
type CheckoutService struct {
	transactions  *TransactionService
	receiptHeader string
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(transactions *TransactionService, receiptHeader string) *CheckoutService {
	return &CheckoutService{transactions: transactions, receiptHeader: receiptHeader}
}

// CheckoutInput is what the cashier enters at the payment screen
type CheckoutInput struct {
	CustomerName string
	Received     float64
	IsCredit     bool
	Discount     int64
	Tax          *int64
}

// CheckoutPreview shows the settlement before anything is sent
type CheckoutPreview struct {
	Items     []entity.CartItem `json:"items"`
	Subtotal  int64             `json:"subtotal"`
	Discount  int64             `json:"discount"`
	Tax       int64             `json:"tax"`
	Total     int64             `json:"total"`
	Payment   PaymentSummary    `json:"payment"`
	Formatted FormattedPayment  `json:"formatted"`
}

// CheckoutResult is a confirmed sale and its receipt
type CheckoutResult struct {
	Transaction *entity.Transaction  `json:"transaction"`
	Payment     PaymentSummary       `json:"payment"`
	Receipt     entity.ReceiptFields `json:"receipt"`
	ReceiptText string               `json:"receipt_text"`
}

// Preview computes the settlement of the cart without submitting it
func (s *CheckoutService) Preview(cart *CartStore, input CheckoutInput) (*CheckoutPreview, error) {
	return s.preview(cart.Items(), input)
}

// preview settles one snapshot of the cart lines
func (s *CheckoutService) preview(items []entity.CartItem, input CheckoutInput) (*CheckoutPreview, error) {
	if len(items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: "cart is empty"}})
	}
	if input.Discount < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "discount", Message: "discount must not be negative"}})
	}

	var tax int64
	if input.Tax != nil {
		tax = *input.Tax
	}
	var subtotal int64
	for _, item := range items {
		subtotal += item.Subtotal()
	}
	total := subtotal - input.Discount + tax
	if total < 0 {
		total = 0
	}

	payment := CalculatePayment(float64(total), input.Received, input.IsCredit)
	return &CheckoutPreview{
		Items:     items,
		Subtotal:  subtotal,
		Discount:  input.Discount,
		Tax:       tax,
		Total:     total,
		Payment:   payment,
		Formatted: payment.Formatted(),
	}, nil
}

// Checkout submits the cart as user. The lines are read once; after the
// server confirms the sale exactly those lines are taken out of the cart, so
// anything added while the sale was in flight stays. On any failure the cart
// is left untouched.
func (s *CheckoutService) Checkout(ctx context.Context, user *entity.CurrentUser, cart *CartStore, input CheckoutInput) (*CheckoutResult, error) {
	if user == nil || strings.TrimSpace(user.BranchName) == "" {
		return nil, apperror.NewRequiredError("branch")
	}

	items := cart.Items()
	preview, err := s.preview(items, input)
	if err != nil {
		return nil, err
	}
	payment := preview.Payment
	if !payment.IsCredit && payment.Due > 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{
			Field:   "received",
			Message: "received amount is less than the total; settle as kasbon instead",
		}})
	}

	tax := preview.Tax
	tx, err := s.transactions.Submit(ctx, &entity.CreateTransactionPayload{
		CustomerName:  input.CustomerName,
		BranchName:    user.BranchName,
		CashierName:   user.Name,
		Items:         transactionItems(items),
		Subtotal:      preview.Subtotal,
		Tax:           &tax,
		Total:         preview.Total,
		Discount:      preview.Discount,
		PaidAmount:    payment.Paid,
		IsCredit:      payment.IsCredit,
		PaymentMethod: payment.PaymentMethod(),
		Status:        payment.Status(),
	})
	if err != nil {
		return nil, err
	}

	cart.Settle(items)

	if tx.ChangeAmount == 0 {
		tx.ChangeAmount = payment.Change
	}
	fields := ReceiptFieldsFromTransaction(tx, s.receiptHeader, user.Name, payment.Received)
	log.Printf("[checkout] %s settled by %s paid=%d due=%d", tx.Number(), user.Name, payment.Paid, payment.Due)

	return &CheckoutResult{
		Transaction: tx,
		Payment:     payment,
		Receipt:     fields,
		ReceiptText: BuildReceipt(fields),
	}, nil
}
