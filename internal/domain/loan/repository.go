package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	// GetByID returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Loan, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Loan, error)
	ListByUserID(ctx context.Context, userID string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
