package usecase

import (
	"errors"

	"hospital-management-api/internal/domain/repository"
)

var (
	ErrPatientNotFound        = errors.New("patient not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidDateFilter      = errors.New("invalid date filter")
	ErrInvalidAppointmentTime = errors.New("invalid appointment time")

	// ErrInvalidData is returned when the store rejects a value
	ErrInvalidData = repository.ErrInvalidData
)
