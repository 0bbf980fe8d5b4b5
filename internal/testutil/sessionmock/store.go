package sessionmock

import (
	"context"
	"time"

	"buffrlend-backend/internal/domain/session"
)

var _ session.Store = (*Store)(nil)

// Store is a function-backed session.Store. Unset Get reports session.ErrNotFound.
type Store struct {
	GetFn func(ctx context.Context, token string) (string, error)
	SetFn func(ctx context.Context, token, userID string, ttl time.Duration) error
}

func (m *Store) Get(ctx context.Context, token string) (string, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}
	return "", session.ErrNotFound
}

func (m *Store) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, token, userID, ttl)
	}
	return nil
}
