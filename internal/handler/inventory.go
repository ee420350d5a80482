package handler

import (
	"net/http"

	"asset-management-api/internal/model"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// InventoryHandler handles the HTTP requests for computer, software and
// employee records.
type InventoryHandler struct {
	Service InventoryService

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(svc InventoryService, logger *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{
		Service:        svc,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(),
	}
}

// Computers

// CreateComputerHandler handles the creation of a new computer.
func (h *InventoryHandler) CreateComputerHandler(w http.ResponseWriter, r *http.Request) {
	var computer model.Computer
	if !h.ErrorHandler.DecodeJSON(w, r, &computer, false) {
		return
	}

	created, err := h.Service.CreateComputer(r.Context(), computer)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "create computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Computer created successfully", created)
}

// ListComputersHandler handles the retrieval of computers with sorting and pagination.
func (h *InventoryHandler) ListComputersHandler(w http.ResponseWriter, r *http.Request) {
	pagination, params := h.ResponseHelper.ParseListParams(r)

	result, err := h.Service.ListComputers(r.Context(), params)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list computers")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(pagination, result.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("computers", result.Items, meta))
}

// GetComputerHandler handles the retrieval of a single computer by ID.
func (h *InventoryHandler) GetComputerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	computer, err := h.Service.GetComputer(r.Context(), id)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "get computer")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, computer)
}

// UpdateComputerHandler handles the update of a computer.
func (h *InventoryHandler) UpdateComputerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	var computer model.Computer
	if !h.ErrorHandler.DecodeJSON(w, r, &computer, false) {
		return
	}

	updated, err := h.Service.UpdateComputer(r.Context(), id, computer)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "update computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Computer updated successfully", updated)
}

// DeleteComputerHandler handles the deletion of a computer.
func (h *InventoryHandler) DeleteComputerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteComputer(r.Context(), id); err != nil {
		h.ErrorHandler.HandleError(w, r, err, "delete computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Computer deleted successfully",
		map[string]interface{}{"computer_id": id})
}

// Software

// CreateSoftwareHandler handles the creation of a software license.
func (h *InventoryHandler) CreateSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	var software model.Software
	if !h.ErrorHandler.DecodeJSON(w, r, &software, false) {
		return
	}

	created, err := h.Service.CreateSoftware(r.Context(), software)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "create software")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Software created successfully", created)
}

// ListSoftwareHandler handles the retrieval of software with sorting and pagination.
func (h *InventoryHandler) ListSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	pagination, params := h.ResponseHelper.ParseListParams(r)

	result, err := h.Service.ListSoftware(r.Context(), params)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list software")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(pagination, result.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("software", result.Items, meta))
}

// GetSoftwareHandler handles the retrieval of a single software license.
func (h *InventoryHandler) GetSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	software, err := h.Service.GetSoftware(r.Context(), id)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "get software")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, software)
}

// UpdateSoftwareHandler handles the update of a software license.
func (h *InventoryHandler) UpdateSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	var software model.Software
	if !h.ErrorHandler.DecodeJSON(w, r, &software, false) {
		return
	}

	updated, err := h.Service.UpdateSoftware(r.Context(), id, software)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "update software")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Software updated successfully", updated)
}

// DeleteSoftwareHandler handles the deletion of a software license.
func (h *InventoryHandler) DeleteSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteSoftware(r.Context(), id); err != nil {
		h.ErrorHandler.HandleError(w, r, err, "delete software")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Software deleted successfully",
		map[string]interface{}{"software_id": id})
}

// Employees

// CreateEmployeeHandler handles the creation of an employee.
func (h *InventoryHandler) CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var employee model.Employee
	if !h.ErrorHandler.DecodeJSON(w, r, &employee, false) {
		return
	}

	created, err := h.Service.CreateEmployee(r.Context(), employee)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "create employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Employee created successfully", created)
}

// ListEmployeesHandler handles the retrieval of employees with sorting and pagination.
func (h *InventoryHandler) ListEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	pagination, params := h.ResponseHelper.ParseListParams(r)

	result, err := h.Service.ListEmployees(r.Context(), params)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list employees")
		return
	}

	meta := h.ResponseHelper.CalculatePaginationMeta(pagination, result.TotalCount)
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreatePaginatedListResponseData("employees", result.Items, meta))
}

// GetEmployeeHandler handles the retrieval of a single employee.
func (h *InventoryHandler) GetEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Service.GetEmployee(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "get employee")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, employee)
}

// UpdateEmployeeHandler handles the update of an employee.
func (h *InventoryHandler) UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var employee model.Employee
	if !h.ErrorHandler.DecodeJSON(w, r, &employee, false) {
		return
	}

	updated, err := h.Service.UpdateEmployee(r.Context(), mux.Vars(r)["id"], employee)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "update employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Employee updated successfully", updated)
}

// DeleteEmployeeHandler handles the deletion of an employee.
func (h *InventoryHandler) DeleteEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Service.DeleteEmployee(r.Context(), id); err != nil {
		h.ErrorHandler.HandleError(w, r, err, "delete employee")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Employee deleted successfully",
		map[string]interface{}{"employee_id": id})
}
