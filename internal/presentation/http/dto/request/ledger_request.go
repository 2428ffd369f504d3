package request

// CreateExpenseRequest is the body of POST /laporan. Branch and cashier come
// from the session.
type CreateExpenseRequest struct {
	Date        string  `json:"date"`
	Category    string  `json:"category" binding:"required"`
	Amount      int64   `json:"amount" binding:"gte=0"`
	Description string  `json:"description"`
	ReceiptURL  *string `json:"receipt_url"`
}

// UpdateExpenseRequest is the body of PUT /laporan/:id
type UpdateExpenseRequest struct {
	Date        *string `json:"date"`
	Category    *string `json:"category"`
	Amount      *int64  `json:"amount" binding:"omitempty,gte=0"`
	Description *string `json:"description"`
	ReceiptURL  *string `json:"receipt_url"`
}

// CreateCashLogRequest is the body of POST /cashlog
type CreateCashLogRequest struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount" binding:"gte=0"`
	Type   string `json:"type" binding:"required"`
	Note   string `json:"note"`
}

// CashCountRequest is the body of POST /cashlog/open and /cashlog/close
type CashCountRequest struct {
	Amount int64  `json:"amount" binding:"gte=0"`
	Note   string `json:"note"`
}
