package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"
)

type PatientHandler struct {
	errorWriter
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, debug bool) *PatientHandler {
	return &PatientHandler{
		errorWriter:    errorWriter{debug: debug},
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// CreatePatient handles patient registration
// @Summary Create a new patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		h.write(w, err, "create patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient created successfully", patient)
}

// GetAllPatients handles listing patients
// @Summary List patients
// @Tags Patients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Name, phone or condition"
// @Param gender query string false "male or female"
// @Success 200 {object} dto.PatientListResponse
// @Failure 422 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		response.ValidationError(w, map[string]string{"page": "page must be an integer"})
		return
	}
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		response.ValidationError(w, map[string]string{"limit": "limit must be an integer"})
		return
	}

	query := dto.PatientListQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Gender: r.URL.Query().Get("gender"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patients, err := h.patientUsecase.GetAll(r.Context(), query)
	if err != nil {
		h.write(w, err, "get patients")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

// GetPatient handles getting a patient by ID
// @Summary Get patient by ID
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		h.write(w, err, "get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// UpdatePatient handles partial patient updates
// @Summary Update patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param id path int true "Patient ID"
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		h.write(w, err, "update patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}

// DeletePatient handles patient removal
// @Summary Delete patient
// @Tags Patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.patientUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		h.write(w, err, "delete patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient deleted successfully", nil)
}
