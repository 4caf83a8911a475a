package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetAll(ctx context.Context, query dto.DoctorListQuery) (*dto.DoctorListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	events     service.EventPublisher
}

func NewDoctorUsecase(log *logrus.Logger, doctorRepo repository.DoctorRepository, events service.EventPublisher) DoctorUsecase {
	return &doctorUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		events:     events,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor := converter.CreateDoctorRequestToEntity(req)

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	res := converter.DoctorToResponse(doctor)
	u.events.Publish(ctx, service.EventDoctorCreated, doctor.ID, res)

	return res, nil
}

// GetAll returns every matching doctor with counts grouped over the result
func (u *doctorUsecase) GetAll(ctx context.Context, query dto.DoctorListQuery) (*dto.DoctorListResponse, error) {
	filter := entity.DoctorFilter{
		Specialty: entity.Specialty(query.Specialty),
		Status:    entity.DoctorStatus(query.Status),
		Search:    query.Search,
	}

	doctors, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	summary := dto.DoctorSummary{
		Total:          len(doctors),
		SpecialtyCount: make(map[string]int),
		StatusCount:    make(map[string]int),
	}
	for _, doctor := range doctors {
		summary.SpecialtyCount[string(doctor.Specialty)]++
		summary.StatusCount[string(doctor.Status)]++
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Summary: summary,
	}, nil
}

func (u *doctorUsecase) GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	converter.ApplyDoctorUpdate(doctor, req)

	rows, err := u.doctorRepo.Update(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrDoctorNotFound
	}

	res := converter.DoctorToResponse(doctor)
	u.events.Publish(ctx, service.EventDoctorUpdated, doctor.ID, res)

	return res, nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.doctorRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete doctor %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}

	u.events.Publish(ctx, service.EventDoctorDeleted, id, nil)
	return nil
}
