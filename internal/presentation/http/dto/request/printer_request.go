package request

// PrintReceiptRequest optionally overrides the received amount shown on a
// reprinted receipt.
type PrintReceiptRequest struct {
	Received int64 `json:"received" binding:"gte=0"`
}
