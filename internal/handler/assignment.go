package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
)

// EmployeeRef is an employee identifier sent either as a JSON string or as
// a JSON number.
type EmployeeRef string

// UnmarshalJSON accepts "42", 42 and null.
func (e *EmployeeRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*e = EmployeeRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("employee_id must be a string or a number")
	}
	*e = EmployeeRef(n.String())
	return nil
}

// AssignComputerRequest is the body of POST /assignments/computers
type AssignComputerRequest struct {
	EmployeeID EmployeeRef `json:"employee_id"`
	Hostname   string      `json:"hostname"`
}

// AssignSoftwareRequest is the body of POST /assignments/software
type AssignSoftwareRequest struct {
	SoftwareID int64  `json:"software_id"`
	Hostname   string `json:"hostname"`
}

// ReclaimComputerRequest is the optional body of PUT /computers/{id}/reclaim
type ReclaimComputerRequest struct {
	Status string `json:"status"`
}

// AssignmentHandler handles the HTTP requests of the assignment engine.
type AssignmentHandler struct {
	Service AssignmentService

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(svc AssignmentService, logger *logrus.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		Service:        svc,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(),
	}
}

// AssignComputerHandler binds a computer to an employee.
func (h *AssignmentHandler) AssignComputerHandler(w http.ResponseWriter, r *http.Request) {
	var req AssignComputerRequest
	if !h.ErrorHandler.DecodeJSON(w, r, &req, false) {
		return
	}

	assignment, err := h.Service.AssignComputer(r.Context(), string(req.EmployeeID), req.Hostname)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "assign computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Computer assigned successfully", assignment)
}

// AssignSoftwareHandler records a software license as installed on a computer.
func (h *AssignmentHandler) AssignSoftwareHandler(w http.ResponseWriter, r *http.Request) {
	var req AssignSoftwareRequest
	if !h.ErrorHandler.DecodeJSON(w, r, &req, false) {
		return
	}

	assignment, err := h.Service.AssignSoftware(r.Context(), req.SoftwareID, req.Hostname)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "assign software")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Software assigned successfully", assignment)
}

// ReclaimComputerHandler returns a computer to the pool.
func (h *AssignmentHandler) ReclaimComputerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	var req ReclaimComputerRequest
	if !h.ErrorHandler.DecodeJSON(w, r, &req, true) {
		return
	}

	result, err := h.Service.ReclaimComputer(r.Context(), id, req.Status)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "reclaim computer")
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Computer reclaimed successfully", result)
}

// ListOpenComputerAssignmentsHandler lists who currently holds which computer.
func (h *AssignmentHandler) ListOpenComputerAssignmentsHandler(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	views, err := h.Service.OpenComputerAssignments(r.Context(), employeeID)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list open computer assignments")
		return
	}

	var extra map[string]interface{}
	if employeeID != "" {
		extra = map[string]interface{}{"employee_id": employeeID}
	}
	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreateListResponseData("assignments", views, len(views), extra))
}

// ListSoftwareInstallationsHandler lists software installations.
func (h *AssignmentHandler) ListSoftwareInstallationsHandler(w http.ResponseWriter, r *http.Request) {
	views, err := h.Service.SoftwareInstallations(r.Context())
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list software installations")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreateListResponseData("installations", views, len(views), nil))
}

// ComputerAssignmentHistoryHandler lists every assignment of one computer.
func (h *AssignmentHandler) ComputerAssignmentHistoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ErrorHandler.ParseID(w, r, "id")
	if !ok {
		return
	}

	history, err := h.Service.ComputerAssignmentHistory(r.Context(), id)
	if err != nil {
		h.ErrorHandler.HandleError(w, r, err, "list assignment history")
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK,
		h.ResponseHelper.CreateListResponseData("assignments", history, len(history),
			map[string]interface{}{"computer_id": id}))
}
