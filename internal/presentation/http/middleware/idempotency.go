package middleware

import (
	"bytes"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/presentation/http/dto/response"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a checkout answer can be replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// SubmissionGuard keeps a session from settling the same cart twice: only one
// guarded request per session runs at a time, and a repeated Idempotency-Key
// replays the first successful answer.
type SubmissionGuard struct {
	repo     repository.SubmissionRepository
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewSubmissionGuard creates a guard backed by repo
func NewSubmissionGuard(repo repository.SubmissionRepository) *SubmissionGuard {
	return &SubmissionGuard{repo: repo, inFlight: make(map[string]struct{})}
}

func (g *SubmissionGuard) acquire(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[sessionID]; busy {
		return false
	}
	g.inFlight[sessionID] = struct{}{}
	return true
}

func (g *SubmissionGuard) release(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, sessionID)
}

// Middleware must run after SessionMiddleware
func (g *SubmissionGuard) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionID(c)
		if sessionID == "" {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}

		if !g.acquire(sessionID) {
			response.Conflict(c, "A checkout is already in progress")
			c.Abort()
			return
		}
		defer g.release(sessionID)

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		existing, err := g.repo.Get(c.Request.Context(), idempotencyKey, sessionID)
		if err == nil && existing != nil && !existing.IsExpired() {
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(existing.ResponseCode, "application/json; charset=utf-8", existing.ResponseBody)
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only successful settlements are replayed; a failure may be retried
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			_ = g.repo.Save(c.Request.Context(), &entity.SubmissionRecord{
				Key:          idempotencyKey,
				SessionID:    sessionID,
				Endpoint:     c.Request.Method + " " + c.FullPath(),
				ResponseCode: c.Writer.Status(),
				ResponseBody: blw.body.Bytes(),
				ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
			})
		}
	}
}
