package service

import "context"

// NotificationService interface for sending notifications
type NotificationService interface {
	SendAssignmentNotification(ctx context.Context, notification AssignmentNotification) error
}

// AssignmentNotification represents a notification about assignment activity
type AssignmentNotification struct {
	Type          NotificationType
	EmployeeID    string
	ComputerCount int
	Hostname      string
	Message       string
	Metadata      map[string]string
}

// NotificationType represents the type of notification
type NotificationType string

const (
	NotificationTypeThresholdExceeded NotificationType = "threshold_exceeded"
	NotificationTypeComputerReclaimed NotificationType = "computer_reclaimed"
)

// AssignmentRecorder receives the outcome of every engine operation.
type AssignmentRecorder interface {
	ObserveAssignment(kind, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) ObserveAssignment(string, string) {}
