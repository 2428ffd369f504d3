package entity

import "github.com/sangkips/kasir/internal/domain/enum"

// StoreExpense is a branch expense record (laporan)
type StoreExpense struct {
	ID          string               `json:"id"`
	Date        string               `json:"date"`
	Category    enum.ExpenseCategory `json:"category"`
	Amount      int64                `json:"amount"`
	Description string               `json:"description"`
	CashierName string               `json:"cashier_name"`
	BranchName  string               `json:"branch_name,omitempty"`
	ApprovedBy  *string              `json:"approved_by,omitempty"`
	ReceiptURL  *string              `json:"receipt_url,omitempty"`
	Status      enum.ApprovalStatus  `json:"status"`
}

// CreateExpensePayload is the body of POST /laporan
type CreateExpensePayload struct {
	BranchName  string               `json:"branch_name" validate:"notblank"`
	Date        string               `json:"date" validate:"notblank"`
	Category    enum.ExpenseCategory `json:"category" validate:"oneof=operasional listrik air pembelian lainnya"`
	Amount      int64                `json:"amount" validate:"gte=0"`
	Description string               `json:"description"`
	CashierName string               `json:"cashier_name" validate:"notblank"`
	ReceiptURL  *string              `json:"receipt_url,omitempty"`
}

// UpdateExpensePayload is the body of PUT /laporan/:id; nil fields are left unchanged
type UpdateExpensePayload struct {
	BranchName  string                `json:"branch_name" validate:"notblank"`
	Date        *string               `json:"date,omitempty"`
	Category    *enum.ExpenseCategory `json:"category,omitempty" validate:"omitempty,oneof=operasional listrik air pembelian lainnya"`
	Amount      *int64                `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Description *string               `json:"description,omitempty"`
	ReceiptURL  *string               `json:"receipt_url,omitempty"`
}

// ExpenseFilter narrows a laporan listing
type ExpenseFilter struct {
	Branch   string
	Page     int
	Limit    int
	Status   enum.ApprovalStatus
	Category enum.ExpenseCategory
}
