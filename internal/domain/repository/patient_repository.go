package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)
	FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, int64, error)
	FindFirstByNames(ctx context.Context, names []string) (map[string]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByConditionKeywords(ctx context.Context, keywords []string) (int64, error)
}
