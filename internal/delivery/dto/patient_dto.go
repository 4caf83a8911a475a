package dto

import (
	"time"

	"hospital-management-api/pkg/response"
)

// Request DTOs

type CreatePatientRequest struct {
	Name             string  `json:"name" validate:"required,min=1,max=100"`
	Age              *int    `json:"age" validate:"required,gte=0,lte=150"`
	Gender           string  `json:"gender" validate:"required,oneof=male female"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Address          *string `json:"address" validate:"omitempty,max=500"`
	MedicalCondition string  `json:"medical_condition" validate:"required"`
	Notes            *string `json:"notes" validate:"omitempty"`
}

// UpdatePatientRequest only touches the fields present in the payload
type UpdatePatientRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	Age              *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender           *string `json:"gender" validate:"omitempty,oneof=male female"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Address          *string `json:"address" validate:"omitempty,max=500"`
	MedicalCondition *string `json:"medical_condition" validate:"omitempty,min=1"`
	Notes            *string `json:"notes" validate:"omitempty"`
}

type PatientListQuery struct {
	Page   int    `json:"page" validate:"gte=1"`
	Limit  int    `json:"limit" validate:"gte=1,lte=100"`
	Search string `json:"search"`
	Gender string `json:"gender"`
}

// Response DTOs

type PatientResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	Phone            *string   `json:"phone"`
	Address          *string   `json:"address"`
	MedicalCondition string    `json:"medical_condition"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients   []PatientResponse `json:"patients"`
	Pagination *response.Meta    `json:"pagination"`
}
