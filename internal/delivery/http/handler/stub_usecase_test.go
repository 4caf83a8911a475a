package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

// -- Stub Patient Usecase --

type stubPatientUsecase struct {
	createFn func(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	getAllFn func(ctx context.Context, query dto.PatientListQuery) (*dto.PatientListResponse, error)
	getFn    func(ctx context.Context, id uint) (*dto.PatientResponse, error)
	updateFn func(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubPatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubPatientUsecase) GetAll(ctx context.Context, query dto.PatientListQuery) (*dto.PatientListResponse, error) {
	return s.getAllFn(ctx, query)
}

func (s *stubPatientUsecase) GetByID(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubPatientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubPatientUsecase) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// -- Stub Appointment Usecase --

type stubAppointmentUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getAllFn func(ctx context.Context, query dto.AppointmentListQuery) (*dto.AppointmentListResponse, error)
	getFn    func(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	updateFn func(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubAppointmentUsecase) GetAll(ctx context.Context, query dto.AppointmentListQuery) (*dto.AppointmentListResponse, error) {
	return s.getAllFn(ctx, query)
}

func (s *stubAppointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubAppointmentUsecase) Update(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubAppointmentUsecase) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// -- Stub Doctor Usecase --

type stubDoctorUsecase struct {
	createFn func(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	getAllFn func(ctx context.Context, query dto.DoctorListQuery) (*dto.DoctorListResponse, error)
	getFn    func(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	updateFn func(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubDoctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubDoctorUsecase) GetAll(ctx context.Context, query dto.DoctorListQuery) (*dto.DoctorListResponse, error) {
	return s.getAllFn(ctx, query)
}

func (s *stubDoctorUsecase) GetByID(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubDoctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubDoctorUsecase) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// -- Stub Dashboard Usecase --

type stubDashboardUsecase struct {
	getSummaryFn func(ctx context.Context) (*dto.DashboardResponse, error)
}

func (s *stubDashboardUsecase) GetSummary(ctx context.Context) (*dto.DashboardResponse, error) {
	return s.getSummaryFn(ctx)
}

// -- Helpers --

func newTestValidator() *validator.CustomValidator {
	return validator.NewValidator(time.UTC)
}

// serve routes the request through mux so that path variables are populated
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc(pattern, h).Methods(method)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func errorDetails(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	errBody, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error body, got %v", body)
	}
	details, _ := errBody["details"].(map[string]interface{})
	return details
}
