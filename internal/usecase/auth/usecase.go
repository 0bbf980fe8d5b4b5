package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"buffrlend-backend/internal/domain/session"
	"buffrlend-backend/pkg/apperr"
	"buffrlend-backend/pkg/id"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const DefaultSessionTTL = 24 * time.Hour

var validate = validator.New()

type Usecase struct {
	store session.Store
	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
}

func NewUsecase(store session.Store, ttl time.Duration, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	// Login issues sessions without checking credentials against any user store.
	log.Warn("login does not verify credentials; any well-formed email and password gets a session")
	return &Usecase{store: store, ttl: ttl, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// Login opens a session keyed by a fresh token. The email becomes the caller's user id.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, apperr.Validation("email is invalid")
	}
	if in.Password == "" {
		return nil, apperr.Validation("password is required")
	}

	token := id.New()
	if err := u.store.Set(ctx, token, email, u.ttl); err != nil {
		u.log.Error("session write failed", zap.String("email", email), zap.Error(err))
		return nil, apperr.Persistence("failed to create session", err)
	}

	return &LoginResult{
		User:        User{ID: id.New(), Email: email, Product: in.Product},
		Session:     Session{Token: token, ExpiresAt: u.now().Add(u.ttl)},
		AccessToken: token,
	}, nil
}

// Authenticate resolves a bearer token to the user id stored with it.
func (u *Usecase) Authenticate(ctx context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperr.Unauthorized("missing session token")
	}
	userID, err := u.store.Get(ctx, token)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return "", apperr.Unauthorized("invalid or expired session")
	case err != nil:
		u.log.Error("session lookup failed", zap.Error(err))
		return "", apperr.Persistence("failed to read session", err)
	case userID == "":
		return "", apperr.Unauthorized("invalid or expired session")
	}
	return userID, nil
}
