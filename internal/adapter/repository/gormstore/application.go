package gormstore

import (
	"context"
	"errors"

	applicationDomain "buffrlend-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *applicationDomain.Application) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return applicationDomain.ErrDuplicate
	}
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*applicationDomain.Application, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*applicationDomain.Application, error) {
	return r.first(ctx, "application_id = ?", applicationID)
}

func (r *ApplicationRepository) first(ctx context.Context, query string, arg any) (*applicationDomain.Application, error) {
	var out applicationDomain.Application
	err := r.db.WithContext(ctx).Where(query, arg).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, applicationDomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}
