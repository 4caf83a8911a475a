package usecase

import (
	"context"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/datetime"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAll(ctx context.Context, query dto.AppointmentListQuery) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	events          service.EventPublisher
	location        *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	events service.EventPublisher,
	location *time.Location,
) AppointmentUsecase {
	if location == nil {
		location = time.Local
	}

	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		events:          events,
		location:        location,
		now:             time.Now,
	}
}

// Create stores a new appointment. The future-time rule is checked by the
// request validator, not here.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentTime, err := datetime.Parse(req.AppointmentTime, u.location)
	if err != nil {
		return nil, ErrInvalidAppointmentTime
	}

	status := entity.AppointmentStatus(req.Status)
	if status == "" {
		status = entity.AppointmentStatusPending
	}

	appointment := &entity.Appointment{
		PatientName:     req.PatientName,
		DoctorName:      req.DoctorName,
		AppointmentTime: appointmentTime,
		Status:          status,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	res := converter.AppointmentToResponse(appointment)
	u.events.Publish(ctx, service.EventAppointmentCreated, appointment.ID, res)

	return res, nil
}

// GetAll lists filtered appointments with the patient and doctor attached by
// name, plus a summary of today's appointments that ignores the filters.
func (u *appointmentUsecase) GetAll(ctx context.Context, query dto.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	filter := entity.AppointmentFilter{
		Status:      query.Status,
		DoctorName:  query.Doctor,
		PatientName: query.Patient,
	}

	if query.DateFrom != "" {
		from, err := datetime.ParseDate(query.DateFrom, u.location)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		start := datetime.Day(from).Start
		filter.From = &start
	}
	if query.DateTo != "" {
		to, err := datetime.ParseDate(query.DateTo, u.location)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		end := datetime.Day(to).End
		filter.To = &end
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	patients, doctors, err := u.lookupParticipants(ctx, appointments)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AppointmentDetailResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]

		var patient *entity.Patient
		if p, ok := patients[appointment.PatientName]; ok {
			patient = &p
		}
		var doctor *entity.Doctor
		if d, ok := doctors[appointment.DoctorName]; ok {
			doctor = &d
		}

		items = append(items, converter.AppointmentToDetailResponse(appointment, patient, doctor))
	}

	summary, err := u.todaySummary(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: items,
		TodaySummary: *summary,
	}, nil
}

// lookupParticipants resolves every distinct name in one query per table
func (u *appointmentUsecase) lookupParticipants(ctx context.Context, appointments []entity.Appointment) (map[string]entity.Patient, map[string]entity.Doctor, error) {
	patientNames := make([]string, 0, len(appointments))
	doctorNames := make([]string, 0, len(appointments))
	seenPatients := make(map[string]bool)
	seenDoctors := make(map[string]bool)

	for _, appointment := range appointments {
		if !seenPatients[appointment.PatientName] {
			seenPatients[appointment.PatientName] = true
			patientNames = append(patientNames, appointment.PatientName)
		}
		if !seenDoctors[appointment.DoctorName] {
			seenDoctors[appointment.DoctorName] = true
			doctorNames = append(doctorNames, appointment.DoctorName)
		}
	}

	patients, err := u.patientRepo.FindFirstByNames(ctx, patientNames)
	if err != nil {
		u.log.Warnf("Failed to look up appointment patients: %+v", err)
		return nil, nil, err
	}

	doctors, err := u.doctorRepo.FindFirstByNames(ctx, doctorNames)
	if err != nil {
		u.log.Warnf("Failed to look up appointment doctors: %+v", err)
		return nil, nil, err
	}

	return patients, doctors, nil
}

func (u *appointmentUsecase) todaySummary(ctx context.Context) (*dto.TodaySummary, error) {
	today := datetime.Day(u.now().In(u.location))

	counts, err := u.appointmentRepo.CountByStatusBetween(ctx, today.Start, today.End)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	summary := &dto.TodaySummary{}
	for _, c := range counts {
		summary.Total += c.Total
		switch c.Status {
		case entity.AppointmentStatusConfirmed:
			summary.Confirmed += c.Total
		case entity.AppointmentStatusPending:
			summary.Pending += c.Total
		case entity.AppointmentStatusCancelled:
			summary.Cancelled += c.Total
		}
	}

	return summary, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

// Update applies the fields present in req. Past times are accepted.
func (u *appointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.AppointmentTime != nil {
		appointmentTime, err := datetime.Parse(*req.AppointmentTime, u.location)
		if err != nil {
			return nil, ErrInvalidAppointmentTime
		}
		appointment.AppointmentTime = appointmentTime
	}
	if req.PatientName != nil {
		appointment.PatientName = *req.PatientName
	}
	if req.DoctorName != nil {
		appointment.DoctorName = *req.DoctorName
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Reason != nil {
		appointment.Reason = req.Reason
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}

	rows, err := u.appointmentRepo.Update(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	res := converter.AppointmentToResponse(appointment)
	u.events.Publish(ctx, service.EventAppointmentUpdated, appointment.ID, res)

	return res, nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.events.Publish(ctx, service.EventAppointmentDeleted, id, nil)
	return nil
}
