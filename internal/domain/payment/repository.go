package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
}
