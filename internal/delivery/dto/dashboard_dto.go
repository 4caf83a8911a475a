package dto

import "time"

type DashboardSummary struct {
	TotalPatients          int64 `json:"total_patients"`
	TotalDoctors           int64 `json:"total_doctors"`
	TotalAppointmentsToday int64 `json:"total_appointments_today"`
	AppointmentsThisWeek   int64 `json:"appointments_this_week"`
	PendingCases           int64 `json:"pending_cases"`
}

type RecentAppointmentResponse struct {
	ID              uint      `json:"id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	Reason          *string   `json:"reason"`
}

type DepartmentSummary struct {
	Name             string `json:"name"`
	DoctorCount      int64  `json:"doctor_count"`
	AppointmentCount int64  `json:"appointment_count"`
}

type DashboardResponse struct {
	Summary            DashboardSummary            `json:"summary"`
	RecentAppointments []RecentAppointmentResponse `json:"recent_appointments"`
	Departments        []DepartmentSummary         `json:"departments"`
}
