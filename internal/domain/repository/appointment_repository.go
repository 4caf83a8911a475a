package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uint) (*entity.Appointment, error)
	FindAll(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusBetween(ctx context.Context, from, to time.Time) ([]entity.StatusCount, error)
	// CountByDoctorSpecialty counts appointments whose doctor_name matches the
	// name of any doctor in the given specialty.
	CountByDoctorSpecialty(ctx context.Context, specialty entity.Specialty) (int64, error)
}
