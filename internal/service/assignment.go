package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	apperrors "asset-management-api/pkg/errors"
	"asset-management-api/pkg/logger"
	"asset-management-api/pkg/validation"

	"github.com/sirupsen/logrus"
)

// Assignment kinds reported to the AssignmentRecorder
const (
	KindComputer = "computer"
	KindSoftware = "software"
	KindReclaim  = "reclaim"
)

// DefaultEmployeeThreshold is the number of open computer assignments at
// which an employee triggers a threshold notification.
const DefaultEmployeeThreshold = 3

const notificationTimeout = 30 * time.Second

// AssignmentService is the business layer of the assignment engine. Input is
// validated before any storage call and repository errors are translated into
// application errors.
type AssignmentService struct {
	assignments repository.AssignmentRepository
	reports     repository.ReportRepository
	notifier    NotificationService
	recorder    AssignmentRecorder
	logger      *logrus.Logger
	threshold   int

	wg sync.WaitGroup
}

// AssignmentServiceConfig carries the optional collaborators of the service.
type AssignmentServiceConfig struct {
	// Notifier may be nil, in which case no notifications are sent.
	Notifier  NotificationService
	Recorder  AssignmentRecorder
	Logger    *logrus.Logger
	Threshold int
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(assignments repository.AssignmentRepository, reports repository.ReportRepository, cfg AssignmentServiceConfig) *AssignmentService {
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Recorder == nil {
		cfg.Recorder = noopRecorder{}
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultEmployeeThreshold
	}
	return &AssignmentService{
		assignments: assignments,
		reports:     reports,
		notifier:    cfg.Notifier,
		recorder:    cfg.Recorder,
		logger:      cfg.Logger,
		threshold:   cfg.Threshold,
	}
}

// AssignComputer binds the computer named hostname to the employee.
func (s *AssignmentService) AssignComputer(ctx context.Context, employeeID, hostname string) (assignment *model.ComputerAssignment, err error) {
	defer func() { s.recorder.ObserveAssignment(KindComputer, outcomeLabel(err)) }()

	employeeID = strings.TrimSpace(employeeID)
	hostname = strings.TrimSpace(hostname)

	fields := make(map[string]string)
	if verr := validation.ValidateRequired("employee_id", employeeID); verr != nil {
		fields["employee_id"] = verr.Error()
	}
	if verr := validation.ValidateHostname(hostname); verr != nil {
		fields["hostname"] = verr.Error()
	}
	if len(fields) > 0 {
		return nil, apperrors.InvalidInputErrorWithDetails("Validation failed", fields)
	}

	assignment, rerr := s.assignments.AssignComputer(ctx, employeeID, hostname)
	if rerr != nil {
		appErr := mapRepositoryError(rerr, "assign computer")
		s.logRejection(KindComputer, appErr, logrus.Fields{"employee_id": employeeID, "hostname": hostname})
		return nil, appErr
	}

	s.logger.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"computer_id":   assignment.ComputerID,
		"employee_id":   employeeID,
		"hostname":      hostname,
	}).Info("Computer assigned")

	s.goNotify(func(ctx context.Context) { s.checkAndNotifyThreshold(ctx, employeeID) })

	return assignment, nil
}

// AssignSoftware records the software license as installed on hostname.
func (s *AssignmentService) AssignSoftware(ctx context.Context, softwareID int64, hostname string) (assignment *model.SoftwareAssignment, err error) {
	defer func() { s.recorder.ObserveAssignment(KindSoftware, outcomeLabel(err)) }()

	hostname = strings.TrimSpace(hostname)

	fields := make(map[string]string)
	if softwareID <= 0 {
		fields["software_id"] = "software_id is required"
	}
	if verr := validation.ValidateHostname(hostname); verr != nil {
		fields["hostname"] = verr.Error()
	}
	if len(fields) > 0 {
		return nil, apperrors.InvalidInputErrorWithDetails("Validation failed", fields)
	}

	assignment, rerr := s.assignments.AssignSoftware(ctx, softwareID, hostname)
	if rerr != nil {
		appErr := mapRepositoryError(rerr, "assign software")
		s.logRejection(KindSoftware, appErr, logrus.Fields{"software_id": softwareID, "hostname": hostname})
		return nil, appErr
	}

	s.logger.WithFields(logrus.Fields{
		"assignment_id": assignment.ID,
		"computer_id":   assignment.ComputerID,
		"software_id":   softwareID,
		"hostname":      hostname,
	}).Info("Software assigned")

	return assignment, nil
}

// ReclaimComputer returns the computer to the pool under newStatus and
// closes its open assignment. An empty newStatus means in_stock.
func (s *AssignmentService) ReclaimComputer(ctx context.Context, computerID int64, newStatus string) (result *model.ReclaimResult, err error) {
	defer func() { s.recorder.ObserveAssignment(KindReclaim, outcomeLabel(err)) }()

	status := model.ComputerStatus(strings.ToLower(strings.TrimSpace(newStatus)))
	if status == "" {
		status = model.StatusInStock
	}

	fields := make(map[string]string)
	if computerID <= 0 {
		fields["computer_id"] = "computer_id is required"
	}
	if !status.Reclaimable() {
		fields["status"] = "status must be one of in_stock, in_repair, retired"
	}
	if len(fields) > 0 {
		return nil, apperrors.InvalidInputErrorWithDetails("Validation failed", fields)
	}

	result, rerr := s.assignments.ReclaimComputer(ctx, computerID, status)
	if rerr != nil {
		appErr := mapRepositoryError(rerr, "reclaim computer")
		s.logRejection(KindReclaim, appErr, logrus.Fields{"computer_id": computerID, "status": status})
		return nil, appErr
	}

	s.logger.WithFields(logrus.Fields{
		"computer_id":       computerID,
		"status":            status,
		"closed_assignment": result.ClosedAssignment,
	}).Info("Computer reclaimed")

	if result.ClosedAssignment {
		s.goNotify(func(ctx context.Context) { s.sendReclaimNotification(ctx, *result) })
	}

	return result, nil
}

// OpenComputerAssignments lists open computer assignments, optionally for
// one employee.
func (s *AssignmentService) OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error) {
	employeeID = strings.TrimSpace(employeeID)

	views, err := s.reports.OpenComputerAssignments(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err, "list open computer assignments")
	}
	return views, nil
}

// SoftwareInstallations lists every software assignment with its computer
// and current holder.
func (s *AssignmentService) SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error) {
	views, err := s.reports.SoftwareInstallations(ctx)
	if err != nil {
		return nil, mapRepositoryError(err, "list software installations")
	}
	return views, nil
}

// ComputerAssignmentHistory lists all assignments of a computer, newest first.
func (s *AssignmentService) ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error) {
	if computerID <= 0 {
		return nil, apperrors.InvalidInputError("computer_id is required")
	}

	history, err := s.reports.ComputerAssignmentHistory(ctx, computerID)
	if err != nil {
		return nil, mapRepositoryError(err, "list assignment history")
	}
	return history, nil
}

// Wait blocks until every in-flight notification has finished.
func (s *AssignmentService) Wait() {
	s.wg.Wait()
}

func (s *AssignmentService) logRejection(kind string, appErr *apperrors.AppError, fields logrus.Fields) {
	entry := s.logger.WithFields(fields).WithField("kind", kind).WithField("code", appErr.Code)
	switch appErr.Code {
	case apperrors.ErrorCodeInternal, apperrors.ErrorCodeTimeout:
		entry.WithError(appErr.Cause).Error("Assignment operation failed")
	default:
		entry.Info("Assignment operation rejected")
	}
}

// Notification methods

func (s *AssignmentService) goNotify(fn func(ctx context.Context)) {
	if s.notifier == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (s *AssignmentService) checkAndNotifyThreshold(ctx context.Context, employeeID string) {
	count, err := s.reports.CountOpenAssignments(ctx, employeeID)
	if err != nil {
		s.logger.WithError(err).WithField("employee_id", employeeID).
			Warn("Failed to count employee computers for notification")
		return
	}

	if count < s.threshold {
		return
	}

	notification := AssignmentNotification{
		Type:          NotificationTypeThresholdExceeded,
		EmployeeID:    employeeID,
		ComputerCount: count,
		Message:       fmt.Sprintf("Employee %s has %d computers assigned (threshold: %d)", employeeID, count, s.threshold),
		Metadata: map[string]string{
			"threshold": fmt.Sprintf("%d", s.threshold),
			"count":     fmt.Sprintf("%d", count),
		},
	}

	entry := s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "count": count})
	if err := s.notifier.SendAssignmentNotification(ctx, notification); err != nil {
		entry.WithError(err).Warn("Failed to send threshold notification")
		return
	}
	entry.Info("Threshold notification sent")
}

func (s *AssignmentService) sendReclaimNotification(ctx context.Context, result model.ReclaimResult) {
	notification := AssignmentNotification{
		Type:    NotificationTypeComputerReclaimed,
		Message: fmt.Sprintf("Computer %d reclaimed as %s", result.ComputerID, result.Status),
		Metadata: map[string]string{
			"computer_id": fmt.Sprintf("%d", result.ComputerID),
			"status":      string(result.Status),
		},
	}

	if err := s.notifier.SendAssignmentNotification(ctx, notification); err != nil {
		s.logger.WithError(err).WithField("computer_id", result.ComputerID).
			Warn("Failed to send reclaim notification")
	}
}
