package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
)

const maxReceiptUpload = 10 << 20

// ExpenseHandler handles laporan requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new laporan handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func expenseFilter(user *entity.CurrentUser, req *request.ListRequest) entity.ExpenseFilter {
	return entity.ExpenseFilter{
		Branch:   user.BranchName,
		Page:     req.Page,
		Limit:    req.Limit,
		Status:   enum.ApprovalStatus(req.Status),
		Category: enum.ExpenseCategory(req.Category),
	}
}

// List handles listing the branch's laporan
func (h *ExpenseHandler) List(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(c.Request.Context(), expenseFilter(user, &req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Laporan retrieved", result)
}

// Get handles getting a laporan by ID
func (h *ExpenseHandler) Get(c *gin.Context) {
	expense, err := h.expenseService.GetExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Laporan retrieved", expense)
}

// Create handles recording a laporan for the cashier's branch
func (h *ExpenseHandler) Create(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), &entity.CreateExpensePayload{
		BranchName:  user.BranchName,
		Date:        req.Date,
		Category:    enum.ExpenseCategory(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		CashierName: user.Name,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Laporan created", expense)
}

// Update handles editing a laporan
func (h *ExpenseHandler) Update(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	payload := &entity.UpdateExpensePayload{
		BranchName:  user.BranchName,
		Date:        req.Date,
		Amount:      req.Amount,
		Description: req.Description,
		ReceiptURL:  req.ReceiptURL,
	}
	if req.Category != nil {
		category := enum.ExpenseCategory(*req.Category)
		payload.Category = &category
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Laporan updated", expense)
}

// Delete handles removing a laporan
func (h *ExpenseHandler) Delete(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), user.BranchName, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Laporan deleted", nil)
}

// UploadReceipt stores a receipt photo (multipart field "file") and returns its URL
func (h *ExpenseHandler) UploadReceipt(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxReceiptUpload)

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read file")
		return
	}
	defer file.Close()

	url, err := h.expenseService.UploadReceipt(c.Request.Context(), filepath.Base(header.Filename), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Receipt uploaded", gin.H{"url": url})
}

// Export downloads the branch's laporan as an .xlsx workbook
func (h *ExpenseHandler) Export(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	filename := fmt.Sprintf("laporan_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", service.ExpenseExportContentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)

	if err := h.expenseService.ExportExpenses(c.Request.Context(), expenseFilter(user, &req), c.Writer); err != nil {
		c.Header("Content-Type", "")
		c.Header("Content-Disposition", "")
		response.Error(c, err)
		return
	}
}
