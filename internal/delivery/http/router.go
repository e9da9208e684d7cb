package http

import (
	"net/http"

	"github.com/Swastik2002/TrustMed/internal/delivery/http/handler"
	"github.com/Swastik2002/TrustMed/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	prescriptionHandler *handler.PrescriptionHandler
	orderHandler        *handler.OrderHandler
	medicineHandler     *handler.MedicineHandler
	scheduleHandler     *handler.ScheduleHandler
	doctorHandler       *handler.DoctorHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	orderHandler *handler.OrderHandler,
	medicineHandler *handler.MedicineHandler,
	scheduleHandler *handler.ScheduleHandler,
	doctorHandler *handler.DoctorHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		prescriptionHandler: prescriptionHandler,
		orderHandler:        orderHandler,
		medicineHandler:     medicineHandler,
		scheduleHandler:     scheduleHandler,
		doctorHandler:       doctorHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Medicine catalog (public reads)
	api.HandleFunc("/medicines", r.medicineHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/medicines/categories", r.medicineHandler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/medicines/{id}", r.medicineHandler.GetByID).Methods(http.MethodGet)

	// Availability is public so patients can browse before logging in
	api.HandleFunc("/appointments/availability", r.appointmentHandler.GetAvailability).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Appointments
	protected.Handle("/appointments",
		middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Book))).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/patient/{id}", r.appointmentHandler.GetByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/doctor/{id}", r.appointmentHandler.GetByDoctor).Methods(http.MethodGet)
	protected.Handle("/appointments/{id}/status",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.UpdateStatus))).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Prescriptions
	protected.Handle("/prescriptions",
		middleware.RequireDoctor(http.HandlerFunc(r.prescriptionHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions/appointment/{id}", r.prescriptionHandler.GetByAppointment).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/doctor/{id}", r.prescriptionHandler.GetByDoctor).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/patient/{id}", r.prescriptionHandler.GetByPatient).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)

	// Orders
	protected.Handle("/orders",
		middleware.RequirePatient(http.HandlerFunc(r.orderHandler.Create))).Methods(http.MethodPost)
	protected.HandleFunc("/orders/patient/{id}", r.orderHandler.GetByPatient).Methods(http.MethodGet)
	protected.Handle("/orders/{id}/status",
		middleware.RequireAdmin(http.HandlerFunc(r.orderHandler.UpdateStatus))).Methods(http.MethodPut)
	protected.HandleFunc("/orders/{id}", r.orderHandler.GetByID).Methods(http.MethodGet)

	// Doctor directory
	protected.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)

	// Schedules
	protected.HandleFunc("/schedules/doctor/{id}", r.scheduleHandler.GetByDoctor).Methods(http.MethodGet)
	protected.Handle("/schedules",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.scheduleHandler.Create))).Methods(http.MethodPost)
	protected.Handle("/schedules/{id}",
		middleware.RequireAdminOrDoctor(http.HandlerFunc(r.scheduleHandler.Delete))).Methods(http.MethodDelete)

	// Medicine management (admin)
	protected.Handle("/medicines",
		middleware.RequireAdmin(http.HandlerFunc(r.medicineHandler.Create))).Methods(http.MethodPost)
	protected.Handle("/medicines/{id}",
		middleware.RequireAdmin(http.HandlerFunc(r.medicineHandler.Update))).Methods(http.MethodPut)
	protected.Handle("/medicines/{id}",
		middleware.RequireAdmin(http.HandlerFunc(r.medicineHandler.Delete))).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
