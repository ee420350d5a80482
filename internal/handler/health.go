package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	DB Pinger

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewHealthHandler creates a new HealthHandler. db may be nil.
func NewHealthHandler(db Pinger, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		DB:             db,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(),
	}
}

// Health provides a health check endpoint. An unreachable database answers
// 503 so load balancers take the instance out of rotation.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "up"
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			h.ErrorHandler.Logger.WithError(err).Warn("Health check database ping failed")
			database = "down"
		}
	}

	status := http.StatusOK
	message := "Service is healthy"
	if database != "up" {
		status = http.StatusServiceUnavailable
		message = "Service is degraded"
	}
	h.ErrorHandler.SendSuccessResponse(w, status, message, h.ResponseHelper.CreateHealthCheckData(database))
}
