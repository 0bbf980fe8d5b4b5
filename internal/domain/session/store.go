package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to user ids.
type Store interface {
	Get(ctx context.Context, token string) (string, error)
	Set(ctx context.Context, token, userID string, ttl time.Duration) error
}
