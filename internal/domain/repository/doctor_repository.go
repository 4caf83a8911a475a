package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	FindAll(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error)
	FindFirstByNames(ctx context.Context, names []string) (map[string]entity.Doctor, error)
	Update(ctx context.Context, doctor *entity.Doctor) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountBySpecialty(ctx context.Context) ([]entity.SpecialtyCount, error)
}
