package utils

import "github.com/google/uuid"

// NewRequestID generates an id for the X-Request-ID header
func NewRequestID() string {
	return uuid.New().String()
}

// NewIdempotencyKey generates a key for one submission attempt
func NewIdempotencyKey() string {
	return uuid.New().String()
}

// ShortID returns the first eight characters of an id, for log prefixes
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
