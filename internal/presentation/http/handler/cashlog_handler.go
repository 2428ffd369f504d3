package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/application/service"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/presentation/http/dto/request"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
)

// CashLogHandler handles opening and closing cash counts
type CashLogHandler struct {
	cashLogService *service.CashLogService
}

// NewCashLogHandler creates a new cash log handler
func NewCashLogHandler(cashLogService *service.CashLogService) *CashLogHandler {
	return &CashLogHandler{cashLogService: cashLogService}
}

// List handles listing the branch's cash logs
func (h *CashLogHandler) List(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cashLogService.ListCashLogs(c.Request.Context(), entity.CashLogFilter{
		Branch: user.BranchName,
		Page:   req.Page,
		Limit:  req.Limit,
		Type:   enum.CashLogType(req.Type),
		Status: enum.ApprovalStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Cash logs retrieved", result)
}

// Get handles getting a cash log by ID
func (h *CashLogHandler) Get(c *gin.Context) {
	cashLog, err := h.cashLogService.GetCashLog(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cash log retrieved", cashLog)
}

// Create handles recording a cash log with an explicit type and date
func (h *CashLogHandler) Create(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.CreateCashLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cashLog, err := h.cashLogService.CreateCashLog(c.Request.Context(), &entity.CreateCashLogPayload{
		BranchName:  user.BranchName,
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        enum.CashLogType(req.Type),
		CashierName: user.Name,
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Cash log created", cashLog)
}

// Open records today's opening cash
func (h *CashLogHandler) Open(c *gin.Context) {
	h.count(c, h.cashLogService.OpenCash, "Opening cash recorded")
}

// Close records today's closing cash
func (h *CashLogHandler) Close(c *gin.Context) {
	h.count(c, h.cashLogService.CloseCash, "Closing cash recorded")
}

type cashCountFunc func(ctx context.Context, user *entity.CurrentUser, amount int64, note string) (*entity.CashLog, error)

func (h *CashLogHandler) count(c *gin.Context, record cashCountFunc, message string) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req request.CashCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cashLog, err := record(c.Request.Context(), user, req.Amount, req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, message, cashLog)
}
