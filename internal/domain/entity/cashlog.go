package entity

import "github.com/sangkips/kasir/internal/domain/enum"

// CashLog records the cash counted when a branch opens or closes
type CashLog struct {
	ID          string              `json:"id"`
	Date        string              `json:"date"`
	Amount      int64               `json:"amount"`
	Type        enum.CashLogType    `json:"type"`
	Status      enum.ApprovalStatus `json:"status"`
	ApprovedBy  *string             `json:"approved_by,omitempty"`
	BranchName  string              `json:"branch_name,omitempty"`
	CashierName string              `json:"cashier_name,omitempty"`
	Note        string              `json:"note,omitempty"`
}

// CreateCashLogPayload is the body of POST /cashlog
type CreateCashLogPayload struct {
	BranchName  string           `json:"branch_name" validate:"notblank"`
	Date        string           `json:"date" validate:"notblank"`
	Amount      int64            `json:"amount" validate:"gte=0"`
	Type        enum.CashLogType `json:"type" validate:"oneof=opening_cash closing_cash"`
	CashierName string           `json:"cashier_name" validate:"notblank"`
	Note        string           `json:"note,omitempty"`
}

// CashLogFilter narrows a cash log listing
type CashLogFilter struct {
	Branch string
	Page   int
	Limit  int
	Type   enum.CashLogType
	Status enum.ApprovalStatus
}
