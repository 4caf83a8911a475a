package repository

import (
	"context"
	"errors"
	"strings"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return translateError(r.db.WithContext(ctx).Create(patient).Error)
}

func (r *patientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) filtered(ctx context.Context, filter entity.PatientFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entity.Patient{})
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query = query.Where("name LIKE ? OR phone LIKE ? OR medical_condition LIKE ?", pattern, pattern, pattern)
	}
	if filter.Gender.IsValid() {
		query = query.Where("gender = ?", filter.Gender)
	}
	return query
}

func (r *patientRepository) FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, int64, error) {
	var patients []entity.Patient
	var total int64

	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.filtered(ctx, filter).Order("id ASC").Limit(filter.Limit).Offset(filter.Offset).Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}

	return patients, total, nil
}

// FindFirstByNames returns the lowest-id patient for each of the given names.
func (r *patientRepository) FindFirstByNames(ctx context.Context, names []string) (map[string]entity.Patient, error) {
	if len(names) == 0 {
		return map[string]entity.Patient{}, nil
	}

	var patients []entity.Patient
	err := r.db.WithContext(ctx).Where("name IN ?", names).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}

	return firstByName(patients, func(p entity.Patient) string { return p.Name }), nil
}

// Update writes every column of patient except id and created_at. It never
// inserts: a row deleted since it was loaded reports 0 rows affected.
func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) (int64, error) {
	result := r.db.WithContext(ctx).Model(patient).Select("*").Omit("id", "created_at").Updates(patient)
	return result.RowsAffected, translateError(result.Error)
}

func (r *patientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

// CountByConditionKeywords counts patients whose medical condition contains
// any of the keywords, ignoring case.
func (r *patientRepository) CountByConditionKeywords(ctx context.Context, keywords []string) (int64, error) {
	if len(keywords) == 0 {
		return 0, nil
	}

	clauses := make([]string, len(keywords))
	args := make([]interface{}, len(keywords))
	for i, kw := range keywords {
		clauses[i] = "LOWER(medical_condition) LIKE ?"
		args[i] = containsPattern(strings.ToLower(kw))
	}

	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).
		Where(strings.Join(clauses, " OR "), args...).
		Count(&total).Error
	return total, err
}
