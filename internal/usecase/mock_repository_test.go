package usecase

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// -- Mock Patient Repository --

type mockPatientRepo struct {
	patients map[uint]entity.Patient
	nextID   uint
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[uint]entity.Patient), nextID: 1}
}

func (m *mockPatientRepo) Create(_ context.Context, p *entity.Patient) error {
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	m.patients[p.ID] = *p
	return nil
}

func (m *mockPatientRepo) FindByID(_ context.Context, id uint) (*entity.Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockPatientRepo) sorted() []entity.Patient {
	result := make([]entity.Patient, 0, len(m.patients))
	for _, p := range m.patients {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockPatientRepo) FindAll(_ context.Context, filter entity.PatientFilter) ([]entity.Patient, int64, error) {
	var matched []entity.Patient
	for _, p := range m.sorted() {
		if filter.Search != "" {
			phone := ""
			if p.Phone != nil {
				phone = *p.Phone
			}
			if !strings.Contains(p.Name, filter.Search) && !strings.Contains(phone, filter.Search) &&
				!strings.Contains(p.MedicalCondition, filter.Search) {
				continue
			}
		}
		if filter.Gender.IsValid() && p.Gender != filter.Gender {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return []entity.Patient{}, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[filter.Offset:end], total, nil
}

func (m *mockPatientRepo) FindFirstByNames(_ context.Context, names []string) (map[string]entity.Patient, error) {
	wanted := make(map[string]bool)
	for _, n := range names {
		wanted[n] = true
	}
	result := make(map[string]entity.Patient)
	for _, p := range m.sorted() {
		if _, seen := result[p.Name]; wanted[p.Name] && !seen {
			result[p.Name] = p
		}
	}
	return result, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *entity.Patient) (int64, error) {
	if _, ok := m.patients[p.ID]; !ok {
		return 0, nil
	}
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = *p
	return 1, nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.patients[id]; !ok {
		return 0, nil
	}
	delete(m.patients, id)
	return 1, nil
}

func (m *mockPatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.patients)), nil
}

func (m *mockPatientRepo) CountByConditionKeywords(_ context.Context, keywords []string) (int64, error) {
	var count int64
	for _, p := range m.patients {
		condition := strings.ToLower(p.MedicalCondition)
		for _, k := range keywords {
			if strings.Contains(condition, strings.ToLower(k)) {
				count++
				break
			}
		}
	}
	return count, nil
}

// -- Mock Doctor Repository --

type mockDoctorRepo struct {
	doctors map[uint]entity.Doctor
	nextID  uint
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uint]entity.Doctor), nextID: 1}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *entity.Doctor) error {
	d.ID = m.nextID
	m.nextID++
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	m.doctors[d.ID] = *d
	return nil
}

func (m *mockDoctorRepo) FindByID(_ context.Context, id uint) (*entity.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (m *mockDoctorRepo) sorted() []entity.Doctor {
	result := make([]entity.Doctor, 0, len(m.doctors))
	for _, d := range m.doctors {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockDoctorRepo) FindAll(_ context.Context, filter entity.DoctorFilter) ([]entity.Doctor, error) {
	result := []entity.Doctor{}
	for _, d := range m.sorted() {
		if filter.Specialty.IsValid() && d.Specialty != filter.Specialty {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(d.Name, filter.Search) &&
			!strings.Contains(string(d.Specialty), filter.Search) {
			continue
		}
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDoctorRepo) FindFirstByNames(_ context.Context, names []string) (map[string]entity.Doctor, error) {
	wanted := make(map[string]bool)
	for _, n := range names {
		wanted[n] = true
	}
	result := make(map[string]entity.Doctor)
	for _, d := range m.sorted() {
		if _, seen := result[d.Name]; wanted[d.Name] && !seen {
			result[d.Name] = d
		}
	}
	return result, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *entity.Doctor) (int64, error) {
	if _, ok := m.doctors[d.ID]; !ok {
		return 0, nil
	}
	d.UpdatedAt = time.Now()
	m.doctors[d.ID] = *d
	return 1, nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.doctors[id]; !ok {
		return 0, nil
	}
	delete(m.doctors, id)
	return 1, nil
}

func (m *mockDoctorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.doctors)), nil
}

func (m *mockDoctorRepo) CountBySpecialty(_ context.Context) ([]entity.SpecialtyCount, error) {
	counts := make(map[entity.Specialty]int64)
	for _, d := range m.doctors {
		counts[d.Specialty]++
	}
	result := make([]entity.SpecialtyCount, 0, len(counts))
	for s, c := range counts {
		result = append(result, entity.SpecialtyCount{Specialty: s, DoctorCount: c})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Specialty < result[j].Specialty })
	return result, nil
}

// -- Mock Appointment Repository --

type mockAppointmentRepo struct {
	appointments map[uint]entity.Appointment
	nextID       uint
	doctors      *mockDoctorRepo
}

func newMockAppointmentRepo(doctors *mockDoctorRepo) *mockAppointmentRepo {
	return &mockAppointmentRepo{appointments: make(map[uint]entity.Appointment), nextID: 1, doctors: doctors}
}

func (m *mockAppointmentRepo) Create(_ context.Context, a *entity.Appointment) error {
	a.ID = m.nextID
	m.nextID++
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	m.appointments[a.ID] = *a
	return nil
}

func (m *mockAppointmentRepo) FindByID(_ context.Context, id uint) (*entity.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *mockAppointmentRepo) sorted() []entity.Appointment {
	result := make([]entity.Appointment, 0, len(m.appointments))
	for _, a := range m.appointments {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].AppointmentTime.Equal(result[j].AppointmentTime) {
			return result[i].ID < result[j].ID
		}
		return result[i].AppointmentTime.Before(result[j].AppointmentTime)
	})
	return result
}

func (m *mockAppointmentRepo) FindAll(_ context.Context, filter entity.AppointmentFilter) ([]entity.Appointment, error) {
	result := []entity.Appointment{}
	for _, a := range m.sorted() {
		if filter.From != nil && a.AppointmentTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && a.AppointmentTime.After(*filter.To) {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		if filter.DoctorName != "" && a.DoctorName != filter.DoctorName {
			continue
		}
		if filter.PatientName != "" && a.PatientName != filter.PatientName {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) FindUpcoming(_ context.Context, from time.Time, limit int) ([]entity.Appointment, error) {
	result := []entity.Appointment{}
	for _, a := range m.sorted() {
		if a.AppointmentTime.Before(from) {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAppointmentRepo) Update(_ context.Context, a *entity.Appointment) (int64, error) {
	if _, ok := m.appointments[a.ID]; !ok {
		return 0, nil
	}
	a.UpdatedAt = time.Now()
	m.appointments[a.ID] = *a
	return 1, nil
}

func (m *mockAppointmentRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := m.appointments[id]; !ok {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func (m *mockAppointmentRepo) CountBetween(_ context.Context, from, to time.Time) (int64, error) {
	var count int64
	for _, a := range m.appointments {
		if !a.AppointmentTime.Before(from) && !a.AppointmentTime.After(to) {
			count++
		}
	}
	return count, nil
}

func (m *mockAppointmentRepo) CountByStatusBetween(_ context.Context, from, to time.Time) ([]entity.StatusCount, error) {
	counts := make(map[entity.AppointmentStatus]int64)
	for _, a := range m.appointments {
		if !a.AppointmentTime.Before(from) && !a.AppointmentTime.After(to) {
			counts[a.Status]++
		}
	}
	result := make([]entity.StatusCount, 0, len(counts))
	for s, c := range counts {
		result = append(result, entity.StatusCount{Status: s, Total: c})
	}
	return result, nil
}

func (m *mockAppointmentRepo) CountByDoctorSpecialty(_ context.Context, specialty entity.Specialty) (int64, error) {
	names := make(map[string]bool)
	for _, d := range m.doctors.doctors {
		if d.Specialty == specialty {
			names[d.Name] = true
		}
	}
	var count int64
	for _, a := range m.appointments {
		if names[a.DoctorName] {
			count++
		}
	}
	return count, nil
}

// -- Recording Event Publisher --

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(_ context.Context, name string, _ uint, _ interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, name)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.events...)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
