package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	dashboardHandler   *handler.DashboardHandler
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	recoveryMiddleware *middleware.RecoveryMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	dashboardHandler *handler.DashboardHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	recoveryMiddleware *middleware.RecoveryMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		dashboardHandler:   dashboardHandler,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		recoveryMiddleware: recoveryMiddleware,
	}
}

// Setup registers all routes. Middleware wraps the router itself so that
// unmatched requests and preflights pass through it too.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/", r.root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Doctors
	api.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Dashboard
	api.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(r.notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(r.methodNotAllowed)

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = r.recoveryMiddleware.Handle(h)
	h = r.loggingMiddleware.Handle(h)
	h = middleware.RequestID(h)

	return h
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message": "Hospital Management API",
		"health":  "/health",
	})
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (r *Router) notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func (r *Router) methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, response.CodeBadRequest, "Method not allowed", nil)
}
