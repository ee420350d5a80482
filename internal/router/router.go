package router

import (
	"net/http"

	"asset-management-api/internal/config"
	"asset-management-api/internal/handler"
	"asset-management-api/internal/metrics"
	"asset-management-api/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Assignments *handler.AssignmentHandler
	Inventory   *handler.InventoryHandler
	Health      *handler.HealthHandler
}

// NewRouter creates a new router and sets up the routes with security
// middleware. Security headers, CORS and request ids wrap the whole router so
// they also apply to preflight and unmatched requests.
func NewRouter(h Handlers, cfg *config.Config, logger *logrus.Logger) http.Handler {
	r := mux.NewRouter()

	securityMW := middleware.NewSecurityMiddleware(&cfg.Security)
	loggingMW := middleware.NewLoggingMiddleware(logger)

	r.Use(securityMW.TrustedProxy)
	r.Use(securityMW.RateLimit)
	r.Use(securityMW.RequestTimeout)
	r.Use(metrics.InstrumentHandler)
	r.Use(loggingMW.LogRequests)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Assignment engine
	api.HandleFunc("/assignments/computers", h.Assignments.AssignComputerHandler).Methods(http.MethodPost)
	api.HandleFunc("/assignments/computers", h.Assignments.ListOpenComputerAssignmentsHandler).Methods(http.MethodGet)
	api.HandleFunc("/assignments/software", h.Assignments.AssignSoftwareHandler).Methods(http.MethodPost)
	api.HandleFunc("/assignments/software", h.Assignments.ListSoftwareInstallationsHandler).Methods(http.MethodGet)
	api.HandleFunc("/computers/{id}/reclaim", h.Assignments.ReclaimComputerHandler).Methods(http.MethodPut)
	api.HandleFunc("/computers/{id}/assignments", h.Assignments.ComputerAssignmentHistoryHandler).Methods(http.MethodGet)

	// Computer records
	api.HandleFunc("/computers", h.Inventory.CreateComputerHandler).Methods(http.MethodPost)
	api.HandleFunc("/computers", h.Inventory.ListComputersHandler).Methods(http.MethodGet)
	api.HandleFunc("/computers/{id}", h.Inventory.GetComputerHandler).Methods(http.MethodGet)
	api.HandleFunc("/computers/{id}", h.Inventory.UpdateComputerHandler).Methods(http.MethodPut)
	api.HandleFunc("/computers/{id}", h.Inventory.DeleteComputerHandler).Methods(http.MethodDelete)

	// Software records
	api.HandleFunc("/software", h.Inventory.CreateSoftwareHandler).Methods(http.MethodPost)
	api.HandleFunc("/software", h.Inventory.ListSoftwareHandler).Methods(http.MethodGet)
	api.HandleFunc("/software/{id}", h.Inventory.GetSoftwareHandler).Methods(http.MethodGet)
	api.HandleFunc("/software/{id}", h.Inventory.UpdateSoftwareHandler).Methods(http.MethodPut)
	api.HandleFunc("/software/{id}", h.Inventory.DeleteSoftwareHandler).Methods(http.MethodDelete)

	// Employee records
	api.HandleFunc("/employees", h.Inventory.CreateEmployeeHandler).Methods(http.MethodPost)
	api.HandleFunc("/employees", h.Inventory.ListEmployeesHandler).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.Inventory.GetEmployeeHandler).Methods(http.MethodGet)
	api.HandleFunc("/employees/{id}", h.Inventory.UpdateEmployeeHandler).Methods(http.MethodPut)
	api.HandleFunc("/employees/{id}", h.Inventory.DeleteEmployeeHandler).Methods(http.MethodDelete)

	// Health check
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	api.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)

	var root http.Handler = r
	root = middleware.AssignRequestID(root)
	root = securityMW.CORS()(root)
	root = securityMW.SecurityHeaders(root)
	return root
}
