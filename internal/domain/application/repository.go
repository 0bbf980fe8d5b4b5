package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error

	// Get by primary key
	GetByID(ctx context.Context, id string) (*Application, error)

	// Get by the client supplied application_id
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
}
