package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetAll(ctx context.Context, query dto.PatientListQuery) (*dto.PatientListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	events      service.EventPublisher
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, events service.EventPublisher) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		events:      events,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := converter.CreatePatientRequestToEntity(req)

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	res := converter.PatientToResponse(patient)
	u.events.Publish(ctx, service.EventPatientCreated, patient.ID, res)

	return res, nil
}

func (u *patientUsecase) GetAll(ctx context.Context, query dto.PatientListQuery) (*dto.PatientListResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	filter := entity.PatientFilter{
		Search: query.Search,
		Gender: entity.Gender(query.Gender),
		Limit:  query.Limit,
		Offset: (query.Page - 1) * query.Limit,
	}

	patients, total, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients:   converter.PatientsToResponses(patients),
		Pagination: response.NewMeta(query.Page, query.Limit, total),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	converter.ApplyPatientUpdate(patient, req)

	rows, err := u.patientRepo.Update(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPatientNotFound
	}

	res := converter.PatientToResponse(patient)
	u.events.Publish(ctx, service.EventPatientUpdated, patient.ID, res)

	return res, nil
}

// Delete removes the patient only. Appointments that carry the name are kept.
func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	u.events.Publish(ctx, service.EventPatientDeleted, id, nil)
	return nil
}
