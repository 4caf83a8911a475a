package dto

import "time"

// Request DTOs

type CreateDoctorRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	Specialty  string  `json:"specialty" validate:"required,oneof=internal_medicine surgery pediatrics gynecology ophthalmology dentistry"`
	Experience string  `json:"experience" validate:"required,max=50"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Status     string  `json:"status" validate:"omitempty,oneof=on_duty on_leave resigned"`
	Notes      *string `json:"notes" validate:"omitempty"`
}

type UpdateDoctorRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Specialty  *string `json:"specialty" validate:"omitempty,oneof=internal_medicine surgery pediatrics gynecology ophthalmology dentistry"`
	Experience *string `json:"experience" validate:"omitempty,min=1,max=50"`
	Phone      *string `json:"phone" validate:"omitempty,max=20"`
	Status     *string `json:"status" validate:"omitempty,oneof=on_duty on_leave resigned"`
	Notes      *string `json:"notes" validate:"omitempty"`
}

type DoctorListQuery struct {
	Specialty string `json:"specialty"`
	Status    string `json:"status"`
	Search    string `json:"search"`
}

// Response DTOs

type DoctorResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Specialty  string    `json:"specialty"`
	Experience string    `json:"experience"`
	Phone      *string   `json:"phone"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DoctorSummary struct {
	Total          int            `json:"total"`
	SpecialtyCount map[string]int `json:"specialty_count"`
	StatusCount    map[string]int `json:"status_count"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Summary DoctorSummary    `json:"summary"`
}
