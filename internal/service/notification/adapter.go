package notification

import (
	"context"
	"fmt"

	"asset-management-api/internal/notification"
	"asset-management-api/internal/service"
	apperrors "asset-management-api/pkg/errors"
)

// ServiceAdapter adapts the notification client to the service layer interface
type ServiceAdapter struct {
	client notification.Notifier
}

// NewServiceAdapter creates a new notification service adapter
func NewServiceAdapter(client notification.Notifier) *ServiceAdapter {
	return &ServiceAdapter{
		client: client,
	}
}

// SendAssignmentNotification converts an assignment notification into the
// notification service payload and sends it.
func (a *ServiceAdapter) SendAssignmentNotification(ctx context.Context, assignmentNotification service.AssignmentNotification) error {
	metadata := make(map[string]string, len(assignmentNotification.Metadata)+3)
	for k, v := range assignmentNotification.Metadata {
		metadata[k] = v
	}

	if assignmentNotification.Hostname != "" {
		metadata["hostname"] = assignmentNotification.Hostname
	}
	if assignmentNotification.ComputerCount > 0 {
		metadata["computer_count"] = fmt.Sprintf("%d", assignmentNotification.ComputerCount)
	}
	metadata["notification_type"] = string(assignmentNotification.Type)

	err := a.client.SendNotificationWithContext(ctx, notification.Notification{
		Level:      mapNotificationLevel(assignmentNotification.Type),
		EmployeeID: assignmentNotification.EmployeeID,
		Message:    assignmentNotification.Message,
		Metadata:   metadata,
	})
	if err != nil {
		return apperrors.ExternalServiceError("notification", err)
	}
	return nil
}

// mapNotificationLevel maps service notification types to client notification levels
func mapNotificationLevel(notificationType service.NotificationType) notification.NotificationLevel {
	switch notificationType {
	case service.NotificationTypeThresholdExceeded:
		return notification.LevelWarning
	default:
		return notification.LevelInfo
	}
}
