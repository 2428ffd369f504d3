package entity

import (
	"fmt"
	"time"

	"github.com/sangkips/kasir/internal/domain/enum"
)

// TransactionItem is a line item sent to and returned by the server
type TransactionItem struct {
	ProductID   string `json:"product_id" validate:"notblank"`
	ProductName string `json:"product_name" validate:"notblank"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	Price       int64  `json:"price" validate:"gte=0"`
	Subtotal    int64  `json:"subtotal" validate:"gte=0"`
	Unit        string `json:"unit"`
}

// CheckSubtotal verifies subtotal = price x quantity
func (i TransactionItem) CheckSubtotal() error {
	if want := i.Price * int64(i.Quantity); i.Subtotal != want {
		return fmt.Errorf("subtotal %d does not match price %d x quantity %d", i.Subtotal, i.Price, i.Quantity)
	}
	return nil
}

// CreateTransactionPayload is the settlement request. Tax and Status may be
// left unset; the submitter fills them in before sending.
type CreateTransactionPayload struct {
	CustomerName  string                 `json:"customer_name"`
	BranchName    string                 `json:"branch_name" validate:"notblank"`
	CashierName   string                 `json:"cashier_name,omitempty"`
	Items         []TransactionItem      `json:"items" validate:"min=1,dive"`
	Subtotal      int64                  `json:"subtotal" validate:"gte=0"`
	Tax           *int64                 `json:"tax,omitempty"`
	Total         int64                  `json:"total" validate:"gte=0"`
	Discount      int64                  `json:"discount" validate:"gte=0"`
	PaidAmount    int64                  `json:"paid_amount" validate:"gte=0"`
	IsCredit      bool                   `json:"is_credit"`
	PaymentMethod enum.PaymentMethod     `json:"payment_method" validate:"omitempty,oneof=cash kasbon"`
	Status        enum.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
}

// Transaction is a settled sale as stored by the server
type Transaction struct {
	ID                string                 `json:"id"`
	TransactionNumber string                 `json:"transaction_number"`
	CustomerName      string                 `json:"customer_name"`
	BranchName        string                 `json:"branch_name"`
	CashierName       string                 `json:"cashier_name,omitempty"`
	Items             []TransactionItem      `json:"items"`
	Subtotal          int64                  `json:"subtotal"`
	Tax               int64                  `json:"tax"`
	Discount          int64                  `json:"discount"`
	Total             int64                  `json:"total"`
	PaidAmount        int64                  `json:"paid_amount"`
	ChangeAmount      int64                  `json:"change_amount,omitempty"`
	IsCredit          bool                   `json:"is_credit"`
	PaymentMethod     enum.PaymentMethod     `json:"payment_method"`
	Status            enum.TransactionStatus `json:"status"`
	CreatedAt         time.Time              `json:"created_at"`
}

// Number returns the transaction number, falling back to the id
func (t *Transaction) Number() string {
	if t.TransactionNumber != "" {
		return t.TransactionNumber
	}
	return t.ID
}

// TransactionFilter narrows a transaction listing
type TransactionFilter struct {
	Branch string
	Page   int
	Limit  int
	Status enum.TransactionStatus
}
