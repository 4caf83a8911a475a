package dto

import "time"

// Request DTOs

type CreateAppointmentRequest struct {
	PatientName     string  `json:"patient_name" validate:"required,max=100"`
	DoctorName      string  `json:"doctor_name" validate:"required,max=100"`
	AppointmentTime string  `json:"appointment_time" validate:"required,datetime_iso,future_time"`
	Status          string  `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	Reason          *string `json:"reason" validate:"omitempty"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

// UpdateAppointmentRequest accepts past times so historical records can be corrected
type UpdateAppointmentRequest struct {
	PatientName     *string `json:"patient_name" validate:"omitempty,min=1,max=100"`
	DoctorName      *string `json:"doctor_name" validate:"omitempty,min=1,max=100"`
	AppointmentTime *string `json:"appointment_time" validate:"omitempty,datetime_iso"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	Reason          *string `json:"reason" validate:"omitempty"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

type AppointmentListQuery struct {
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
	Status   string `json:"status"`
	Doctor   string `json:"doctor"`
	Patient  string `json:"patient"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uint      `json:"id"`
	PatientName     string    `json:"patient_name"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentTime time.Time `json:"appointment_time"`
	Status          string    `json:"status"`
	Reason          *string   `json:"reason"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AppointmentPatientInfo is the patient projection attached to a listed appointment
type AppointmentPatientInfo struct {
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Gender    string  `json:"gender"`
	Phone     *string `json:"phone"`
	Condition string  `json:"condition"`
}

// AppointmentDoctorInfo is the doctor projection attached to a listed appointment
type AppointmentDoctorInfo struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
}

type AppointmentDetailResponse struct {
	AppointmentResponse
	Patient *AppointmentPatientInfo `json:"patient"`
	Doctor  *AppointmentDoctorInfo  `json:"doctor"`
}

type TodaySummary struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
	Pending   int64 `json:"pending"`
	Cancelled int64 `json:"cancelled"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentDetailResponse `json:"appointments"`
	TodaySummary TodaySummary                `json:"today_summary"`
}
