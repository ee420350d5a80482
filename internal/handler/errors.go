package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"asset-management-api/internal/middleware"
	apperrors "asset-management-api/pkg/errors"
	"asset-management-api/pkg/logger"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes caps request bodies decoded by the handlers.
const maxBodyBytes = 1 << 20

// ErrorHandler provides centralized error handling functionality for handlers
type ErrorHandler struct {
	Logger *logrus.Logger
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(log *logrus.Logger) *ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &ErrorHandler{
		Logger: log,
	}
}

// SendErrorResponse sends a structured error response
func (e *ErrorHandler) SendErrorResponse(w http.ResponseWriter, statusCode int, message, code string, details map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.WithError(err).Error("Failed to encode error response")
	}
}

// SendSuccessResponse sends a structured success response
func (e *ErrorHandler) SendSuccessResponse(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := SuccessResponse{
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.WithError(err).Error("Failed to encode success response")
	}
}

// SendJSONResponse sends a generic JSON response
func (e *ErrorHandler) SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		e.Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// HandleError writes err as a JSON error response. Application errors keep
// their code and status; anything else is reported as an internal error
// without leaking its text.
func (e *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	appErr := apperrors.WrapError(err, operation)

	entry := e.Logger.WithFields(logrus.Fields{
		"operation":  operation,
		"code":       appErr.Code,
		"request_id": middleware.RequestID(r.Context()),
	})
	status := appErr.GetHTTPStatus()
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("Request failed")
	} else {
		entry.Debug(appErr.Message)
	}

	e.SendErrorResponse(w, status, appErr.Message, string(appErr.Code), appErr.Details)
}

// DecodeJSON decodes the request body into dst and writes the error response
// on failure. An empty body is accepted only when allowEmpty is set.
func (e *ErrorHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, allowEmpty bool) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	e.HandleJSONDecodeError(w, r, err)
	return false
}

// HandleJSONDecodeError handles JSON decoding errors
func (e *ErrorHandler) HandleJSONDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	e.Logger.WithError(err).WithField("request_id", middleware.RequestID(r.Context())).Debug("JSON decode error")
	e.SendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", string(apperrors.ErrorCodeInvalidJSON), nil)
}

// ParseID parses the positive integer path variable named key.
func (e *ErrorHandler) ParseID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	raw := mux.Vars(r)[key]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		e.SendErrorResponse(w, http.StatusBadRequest, "Invalid ID format", string(apperrors.ErrorCodeInvalidInput),
			map[string]interface{}{key: "must be a positive integer"})
		return 0, false
	}
	return id, true
}
