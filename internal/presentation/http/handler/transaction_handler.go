package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
)

// TransactionHandler handles transaction history and receipts
type TransactionHandler struct {
	transactionService *service.TransactionService
	receiptHeader      string
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *service.TransactionService, receiptHeader string) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		receiptHeader:      receiptHeader,
	}
}

// List handles listing the branch's transactions
func (h *TransactionHandler) List(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.transactionService.ListTransactions(c.Request.Context(), entity.TransactionFilter{
		Branch: user.BranchName,
		Page:   req.Page,
		Limit:  req.Limit,
		Status: enum.TransactionStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Transactions retrieved", result)
}

// Get handles getting a transaction by ID
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction retrieved", tx)
}

// Receipt renders the shareable receipt text for a transaction
func (h *TransactionHandler) Receipt(c *gin.Context) {
	if requireUser(c) == nil {
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	// A stored receipt names the cashier who rang it up, not the viewer
	fields := service.ReceiptFieldsFromTransaction(tx, h.receiptHeader, "", 0)
	response.OK(c, "Receipt generated", gin.H{
		"receipt":      fields,
		"receipt_text": service.BuildReceipt(fields),
	})
}
