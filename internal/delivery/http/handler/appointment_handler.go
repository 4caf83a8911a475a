package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type AppointmentHandler struct {
	errorWriter
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator, debug bool) *AppointmentHandler {
	return &AppointmentHandler{
		errorWriter:        errorWriter{debug: debug},
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.Is(err, usecase.ErrInvalidAppointmentTime):
		response.ValidationError(w, map[string]string{"appointment_time": "appointment_time must be an ISO 8601 datetime"})
	case errors.Is(err, usecase.ErrInvalidDateFilter):
		response.ValidationError(w, map[string]string{"date": "date filters must use YYYY-MM-DD"})
	default:
		h.write(w, err, action)
	}
}

// CreateAppointment books a new appointment. The time must be in the future.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "create appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// GetAllAppointments lists appointments with patient and doctor details
func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := dto.AppointmentListQuery{
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		Status:   q.Get("status"),
		Doctor:   q.Get("doctor"),
		Patient:  q.Get("patient"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.GetAll(r.Context(), query)
	if err != nil {
		h.writeError(w, err, "get appointments")
		return
	}

	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), id); err != nil {
		h.writeError(w, err, "delete appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
