package repository

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return translateError(r.db.WithContext(ctx).Create(appointment).Error)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment

	query := r.db.WithContext(ctx)
	if filter.From != nil {
		query = query.Where("appointment_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("appointment_time <= ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DoctorName != "" {
		query = query.Where("doctor_name = ?", filter.DoctorName)
	}
	if filter.PatientName != "" {
		query = query.Where("patient_name = ?", filter.PatientName)
	}

	err := query.Order("appointment_time ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, from time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_time >= ?", from).
		Order("appointment_time ASC, id ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) (int64, error) {
	result := r.db.WithContext(ctx).Model(appointment).Select("*").Omit("id", "created_at").Updates(appointment)
	return result.RowsAffected, translateError(result.Error)
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("appointment_time >= ? AND appointment_time <= ?", from, to).
		Count(&total).Error
	return total, err
}

func (r *appointmentRepository) CountByStatusBetween(ctx context.Context, from, to time.Time) ([]entity.StatusCount, error) {
	var counts []entity.StatusCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status, COUNT(id) AS total").
		Where("appointment_time >= ? AND appointment_time <= ?", from, to).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *appointmentRepository) CountByDoctorSpecialty(ctx context.Context, specialty entity.Specialty) (int64, error) {
	db := r.db.WithContext(ctx)
	doctorNames := db.Model(&entity.Doctor{}).Select("name").Where("specialty = ?", specialty)

	var total int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_name IN (?)", doctorNames).
		Count(&total).Error
	return total, err
}
