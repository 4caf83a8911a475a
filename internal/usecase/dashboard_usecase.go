package usecase

import (
	"context"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/datetime"

	"github.com/sirupsen/logrus"
)

// Number of upcoming appointments shown on the dashboard
const recentAppointmentsLimit = 5

type DashboardUsecase interface {
	GetSummary(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	location        *time.Location
	now             func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	location *time.Location,
) DashboardUsecase {
	if location == nil {
		location = time.Local
	}

	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		now:             time.Now,
	}
}

func (u *dashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	current := u.now().In(u.location)
	today := datetime.Day(current)
	week := datetime.Week(current)

	summary, err := u.summary(ctx, today, week)
	if err != nil {
		return nil, err
	}

	upcoming, err := u.appointmentRepo.FindUpcoming(ctx, today.Start, recentAppointmentsLimit)
	if err != nil {
		u.log.Warnf("Failed to load upcoming appointments: %+v", err)
		return nil, err
	}

	recent := make([]dto.RecentAppointmentResponse, 0, len(upcoming))
	for i := range upcoming {
		recent = append(recent, converter.AppointmentToRecentResponse(&upcoming[i]))
	}

	departments, err := u.departments(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Summary:            *summary,
		RecentAppointments: recent,
		Departments:        departments,
	}, nil
}

func (u *dashboardUsecase) summary(ctx context.Context, today, week datetime.Window) (*dto.DashboardSummary, error) {
	totalPatients, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	totalDoctors, err := u.doctorRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	todayCount, err := u.appointmentRepo.CountBetween(ctx, today.Start, today.End)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	weekCount, err := u.appointmentRepo.CountBetween(ctx, week.Start, week.End)
	if err != nil {
		u.log.Warnf("Failed to count this week's appointments: %+v", err)
		return nil, err
	}

	pendingCases, err := u.patientRepo.CountByConditionKeywords(ctx, entity.PendingCaseKeywords)
	if err != nil {
		u.log.Warnf("Failed to count pending cases: %+v", err)
		return nil, err
	}

	return &dto.DashboardSummary{
		TotalPatients:          totalPatients,
		TotalDoctors:           totalDoctors,
		TotalAppointmentsToday: todayCount,
		AppointmentsThisWeek:   weekCount,
		PendingCases:           pendingCases,
	}, nil
}

// departments lists every specialty that has at least one doctor
func (u *dashboardUsecase) departments(ctx context.Context) ([]dto.DepartmentSummary, error) {
	counts, err := u.doctorRepo.CountBySpecialty(ctx)
	if err != nil {
		u.log.Warnf("Failed to count doctors by specialty: %+v", err)
		return nil, err
	}

	departments := make([]dto.DepartmentSummary, 0, len(counts))
	for _, c := range counts {
		appointmentCount, err := u.appointmentRepo.CountByDoctorSpecialty(ctx, c.Specialty)
		if err != nil {
			u.log.Warnf("Failed to count appointments for %s: %+v", c.Specialty, err)
			return nil, err
		}

		departments = append(departments, dto.DepartmentSummary{
			Name:             string(c.Specialty),
			DoctorCount:      c.DoctorCount,
			AppointmentCount: appointmentCount,
		})
	}

	return departments, nil
}
