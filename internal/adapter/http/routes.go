package http

import (
	"time"

	"buffrlend-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Routes struct {
	Health   *Handler
	Auth     *AuthHandler
	Loans    *LoanHandler
	Payments *PaymentHandler

	Authenticator  middleware.Authenticator
	Redis          redis.Cmdable
	IdempotencyTTL time.Duration
}

// Register mounts every route on e. Mutating authenticated routes honour Idempotency-Key.
func (r Routes) Register(e *echo.Echo, log *zap.Logger) {
	e.GET("/", r.Health.Health)
	e.POST("/auth/login", r.Auth.Login)

	session := middleware.RequireSession(r.Authenticator)
	idem := middleware.Idempotency(r.Redis, r.IdempotencyTTL, log)

	e.POST("/loans", r.Loans.CreateLoan, session, idem)
	e.GET("/loans", r.Loans.ListLoans, session)
	e.GET("/loans/:loan_id", r.Loans.GetLoan, session)
	e.GET("/loans/:loan_id/payments", r.Loans.ListLoanPayments, session)
	e.POST("/payments", r.Payments.CreatePayment, session, idem)
}
