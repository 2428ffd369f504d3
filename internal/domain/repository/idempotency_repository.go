package repository

import (
	"context"

	"github.com/sangkips/kasir/internal/domain/entity"
)

// SubmissionRepository stores replayable checkout responses
type SubmissionRepository interface {
	Get(ctx context.Context, key, sessionID string) (*entity.SubmissionRecord, error)
	Save(ctx context.Context, record *entity.SubmissionRecord) error
}
