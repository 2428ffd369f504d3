package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sangkips/kasir/internal/application/liststore"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/enum"
	"github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/pkg/apperror"
	"github.com/sangkips/kasir/pkg/pagination"
	"github.com/sangkips/kasir/pkg/validator"
)

// DateLayout is the calendar date format the server stores
const DateLayout = "2006-01-02"

// CashLogService manages opening and closing cash counts
type CashLogService struct {
	cashLogRepo  repository.CashLogRepository
	list         *liststore.Store[entity.CashLog]
	defaultLimit int
}

// NewCashLogService creates a new cash log service
func NewCashLogService(cashLogRepo repository.CashLogRepository, defaultLimit int, fetchTimeout time.Duration) *CashLogService {
	s := &CashLogService{
		cashLogRepo:  cashLogRepo,
		defaultLimit: defaultLimit,
	}
	s.list = liststore.New("cashlog", s.fetchPage, liststore.WithFetchTimeout(fetchTimeout))
	return s
}

func (s *CashLogService) fetchPage(ctx context.Context, key liststore.Key) ([]entity.CashLog, *pagination.Pagination, error) {
	return s.cashLogRepo.List(ctx, entity.CashLogFilter{
		Branch: key.Branch,
		Page:   key.Page,
		Limit:  key.Limit,
		Type:   enum.CashLogType(key.Type),
		Status: enum.ApprovalStatus(key.Status),
	})
}

// ListCashLogs returns a page of the branch's cash logs
func (s *CashLogService) ListCashLogs(ctx context.Context, filter entity.CashLogFilter) (*pagination.PaginatedResult[entity.CashLog], error) {
	branch := strings.TrimSpace(filter.Branch)
	if branch == "" {
		return nil, apperror.NewRequiredError("branch")
	}
	params := pageParams(filter.Page, filter.Limit, s.defaultLimit)
	return paginated(s.list.Query(ctx, liststore.Key{
		Branch: branch,
		Page:   params.Page,
		Limit:  params.Limit,
		Type:   string(filter.Type),
		Status: string(filter.Status),
	}))
}

// GetCashLog retrieves a cash log by ID
func (s *CashLogService) GetCashLog(ctx context.Context, id string) (*entity.CashLog, error) {
	return s.cashLogRepo.GetByID(ctx, id)
}

// CreateCashLog records a cash count. Only one log per branch, date and type
// is allowed; the server enforces it and its refusal is returned as is.
func (s *CashLogService) CreateCashLog(ctx context.Context, payload *entity.CreateCashLogPayload) (*entity.CashLog, error) {
	if payload.Date == "" {
		payload.Date = time.Now().Format(DateLayout)
	}
	payload.BranchName = strings.TrimSpace(payload.BranchName)
	if err := validator.ValidateStruct(payload); err != nil {
		return nil, err
	}

	cashLog, err := liststore.MutateWith(ctx, s.list, payload.BranchName, func(ctx context.Context) (*entity.CashLog, error) {
		return s.cashLogRepo.Create(ctx, payload)
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[cashlog] %s recorded branch=%q amount=%d by %s", payload.Type, payload.BranchName, payload.Amount, payload.CashierName)
	return cashLog, nil
}

// OpenCash records the opening count for user's branch
func (s *CashLogService) OpenCash(ctx context.Context, user *entity.CurrentUser, amount int64, note string) (*entity.CashLog, error) {
	return s.record(ctx, user, enum.CashLogOpening, amount, note)
}

// CloseCash records the closing count for user's branch
func (s *CashLogService) CloseCash(ctx context.Context, user *entity.CurrentUser, amount int64, note string) (*entity.CashLog, error) {
	return s.record(ctx, user, enum.CashLogClosing, amount, note)
}

func (s *CashLogService) record(ctx context.Context, user *entity.CurrentUser, logType enum.CashLogType, amount int64, note string) (*entity.CashLog, error) {
	if user == nil {
		return nil, apperror.ErrUnauthorized
	}
	return s.CreateCashLog(ctx, &entity.CreateCashLogPayload{
		BranchName:  user.BranchName,
		Amount:      amount,
		Type:        logType,
		CashierName: user.Name,
		Note:        note,
	})
}
