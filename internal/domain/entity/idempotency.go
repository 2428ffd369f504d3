package entity

import "time"

// SubmissionRecord remembers the gateway's answer to a checkout request so a
// repeated Idempotency-Key replays it instead of creating a second sale.
type SubmissionRecord struct {
	Key          string
	SessionID    string
	Endpoint     string
	ResponseCode int
	ResponseBody []byte
	ExpiresAt    time.Time
}

// IsExpired checks if the record is past its TTL
func (r *SubmissionRecord) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}
