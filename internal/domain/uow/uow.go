package uow

import (
	"context"

	"buffrlend-backend/internal/domain/application"
	"buffrlend-backend/internal/domain/loan"
	"buffrlend-backend/internal/domain/payment"
)

// Repos are bound to the running transaction.
type Repos struct {
	Applications application.Repository
	Loans        loan.Repository
	Payments     payment.Repository
}

type UnitOfWork interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in.
	// Returns loan.ErrNotFound without calling fn when the loan is missing.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
