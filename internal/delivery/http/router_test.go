package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

// newTestRouter wires handlers without usecases. Only routes that answer
// before reaching a usecase are exercised here.
func newTestRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)
	v := validator.NewValidator(time.UTC)

	router := NewRouter(
		handler.NewPatientHandler(nil, v, false),
		handler.NewDoctorHandler(nil, v, false),
		handler.NewAppointmentHandler(nil, v, false),
		handler.NewDashboardHandler(nil, false),
		middleware.NewCORSMiddleware([]string{"http://localhost:3000"}),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRecoveryMiddleware(log, false),
	)
	return router.Setup()
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter()

	for _, path := range []string{"/health", "/api/health"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON: %v", path, err)
		}
		if body["status"] != "healthy" {
			t.Errorf("%s: expected healthy, got %v", path, body)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s: expected request id header", path)
		}
	}
}

func TestRouter_Root(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["health"] != "/health" || body["message"] == "" {
		t.Errorf("unexpected banner %v", body)
	}
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nurses", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/patients/1", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/dashboard", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for dashboard POST, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/today", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 below dashboard, got %d", rec.Code)
	}
}

func TestRouter_InvalidPathID(t *testing.T) {
	h := newTestRouter()

	for _, path := range []string{"/api/patients/abc", "/api/doctors/0", "/api/appointments/1.5"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", path, rec.Code)
		}
	}
}

func TestRouter_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("expected allowed origin header, got %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	// A nil usecase panics once a valid request reaches it
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
