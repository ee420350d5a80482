package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"asset-management-api/internal/model"

	"github.com/jmoiron/sqlx"
)

// ReportRepository serves the read-only "who has what" views.
type ReportRepository interface {
	OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error)
	SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error)
	ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error)
	CountOpenAssignments(ctx context.Context, employeeID string) (int, error)
}

type reportRepository struct {
	DB      *sqlx.DB
	timeout time.Duration
}

// NewReportRepository creates a new ReportRepository on top of db. Every
// query is bounded by timeout.
func NewReportRepository(db *sql.DB, timeout time.Duration) ReportRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &reportRepository{DB: sqlx.NewDb(db, "postgres"), timeout: timeout}
}

// OpenComputerAssignments lists every open computer assignment, newest first.
// An empty employeeID returns all employees.
func (r *reportRepository) OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ca.assignment_id, c.computer_id, c.hostname, c.asset_number, c.status,
			e.employee_id, e.name, e.department, ca.assigned_date
		FROM computer_assignments ca
		JOIN computers c ON c.computer_id = ca.computer_id
		JOIN employees e ON e.employee_id = ca.employee_id
		WHERE ca.returned_date IS NULL
			AND ($1::text = '' OR ca.employee_id = $1::text)
		ORDER BY ca.assigned_date DESC, ca.assignment_id DESC`

	views := []model.OpenComputerAssignment{}
	if err := r.DB.SelectContext(ctx, &views, query, employeeID); err != nil {
		return nil, fmt.Errorf("failed to query open computer assignments: %w", err)
	}
	return views, nil
}

// SoftwareInstallations joins each software assignment to its computer and
// to the computer's current holder, if any.
func (r *reportRepository) SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT c.hostname, c.asset_number, c.status, c.model, c.type, c.os_version,
			s.software_name, s.version,
			COALESCE(e.name, '') AS name, COALESCE(e.department, '') AS department,
			sa.assigned_date AS software_assigned_date,
			ca.assigned_date AS computer_assigned_date
		FROM software_assignments sa
		JOIN software s ON s.software_id = sa.software_id
		JOIN computers c ON c.computer_id = sa.computer_id
		LEFT JOIN computer_assignments ca ON ca.computer_id = c.computer_id AND ca.returned_date IS NULL
		LEFT JOIN employees e ON e.employee_id = ca.employee_id
		ORDER BY c.hostname, s.software_name`

	views := []model.SoftwareInstallation{}
	if err := r.DB.SelectContext(ctx, &views, query); err != nil {
		return nil, fmt.Errorf("failed to query software installations: %w", err)
	}
	return views, nil
}

// ComputerAssignmentHistory lists every assignment of a computer, newest first.
func (r *reportRepository) ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var exists bool
	if err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM computers WHERE computer_id = $1)`, computerID); err != nil {
		return nil, fmt.Errorf("failed to check computer existence: %w", err)
	}
	if !exists {
		return nil, ErrComputerNotFound
	}

	query := `
		SELECT ca.assignment_id, ca.employee_id, e.name, ca.assigned_date, ca.returned_date
		FROM computer_assignments ca
		JOIN employees e ON e.employee_id = ca.employee_id
		WHERE ca.computer_id = $1
		ORDER BY ca.assigned_date DESC, ca.assignment_id DESC`

	history := []model.AssignmentHistoryEntry{}
	if err := r.DB.SelectContext(ctx, &history, query, computerID); err != nil {
		return nil, fmt.Errorf("failed to query assignment history: %w", err)
	}
	return history, nil
}

// CountOpenAssignments returns how many computers the employee currently holds.
func (r *reportRepository) CountOpenAssignments(ctx context.Context, employeeID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM computer_assignments WHERE employee_id = $1 AND returned_date IS NULL`,
		employeeID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count open assignments: %w", err)
	}
	return count, nil
}
