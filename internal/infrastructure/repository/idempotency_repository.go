package repository

import (
	"context"
	"sync"
	"time"

	"github.com/sangkips/kasir/internal/domain/entity"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
)

type submissionRepository struct {
	mu      sync.Mutex
	records map[string]*entity.SubmissionRecord
}

// NewSubmissionRepository creates an in-memory store of checkout responses.
// Records live only as long as the gateway process.
func NewSubmissionRepository() domainRepo.SubmissionRepository {
	return &submissionRepository{records: make(map[string]*entity.SubmissionRecord)}
}

func submissionKey(key, sessionID string) string {
	return sessionID + "|" + key
}

func (r *submissionRepository) Get(ctx context.Context, key, sessionID string) (*entity.SubmissionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[submissionKey(key, sessionID)]
	if !ok {
		return nil, nil
	}
	if record.IsExpired() {
		delete(r.records, submissionKey(key, sessionID))
		return nil, nil
	}
	return record, nil
}

func (r *submissionRepository) Save(ctx context.Context, record *entity.SubmissionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.deleteExpired(time.Now())
	r.records[submissionKey(record.Key, record.SessionID)] = record
	return nil
}

func (r *submissionRepository) deleteExpired(now time.Time) {
	for k, record := range r.records {
		if now.After(record.ExpiresAt) {
			delete(r.records, k)
		}
	}
}
