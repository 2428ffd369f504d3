package entity

import "github.com/sangkips/kasir/internal/domain/enum"

// ReceiptItem is one itemized line on a receipt
type ReceiptItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Price    int64  `json:"price"`
	Subtotal int64  `json:"subtotal"`
}

// ReceiptFields is everything a receipt shows. It is composed from a
// transaction at render time and never stored.
type ReceiptFields struct {
	Header            string             `json:"header,omitempty"`
	TransactionNumber string             `json:"transaction_number"`
	BranchName        string             `json:"branch_name"`
	CustomerName      string             `json:"customer_name"`
	CashierName       string             `json:"cashier_name"`
	Items             []ReceiptItem      `json:"items"`
	PaymentMethod     enum.PaymentMethod `json:"payment_method"`
	Total             int64              `json:"total"`
	Received          int64              `json:"received"`
	Change            int64              `json:"change"`
}
