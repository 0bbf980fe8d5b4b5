package middleware

import (
	"context"
	"strings"

	"buffrlend-backend/pkg/apperr"

	"github.com/labstack/echo/v4"
)

const userIDKey = "user_id"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireSession resolves "Authorization: Bearer <token>" to a user id and
// stores it on the context for handlers to read with UserID.
func RequireSession(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return apperr.Unauthorized("missing bearer token")
			}
			userID, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID is empty outside RequireSession.
func UserID(c echo.Context) string {
	s, _ := c.Get(userIDKey).(string)
	return s
}

func bearer(h string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(h), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
