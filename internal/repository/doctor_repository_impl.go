package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	return translateError(r.db.WithContext(ctx).Create(doctor).Error)
}

func (r *doctorRepository) FindByID(ctx context.Context, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor

	query := r.db.WithContext(ctx)
	if filter.Specialty.IsValid() {
		query = query.Where("specialty = ?", filter.Specialty)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("name LIKE ? OR specialty LIKE ?", pattern, pattern)
	}

	if err := query.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// FindFirstByNames returns the lowest-id doctor for each of the given names.
func (r *doctorRepository) FindFirstByNames(ctx context.Context, names []string) (map[string]entity.Doctor, error) {
	if len(names) == 0 {
		return map[string]entity.Doctor{}, nil
	}

	var doctors []entity.Doctor
	err := r.db.WithContext(ctx).Where("name IN ?", names).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}

	return firstByName(doctors, func(d entity.Doctor) string { return d.Name }), nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.Doctor) (int64, error) {
	result := r.db.WithContext(ctx).Model(doctor).Select("*").Omit("id", "created_at").Updates(doctor)
	return result.RowsAffected, translateError(result.Error)
}

func (r *doctorRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *doctorRepository) CountBySpecialty(ctx context.Context) ([]entity.SpecialtyCount, error) {
	var counts []entity.SpecialtyCount
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Select("specialty, COUNT(id) AS doctor_count").
		Group("specialty").
		Order("specialty ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
