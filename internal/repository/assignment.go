package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"asset-management-api/internal/database"
	"asset-management-api/internal/model"
)

// AssignmentRepository records and closes asset assignments. Every method runs
// its reads and writes in a single transaction.
type AssignmentRepository interface {
	AssignComputer(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error)
	AssignSoftware(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error)
	ReclaimComputer(ctx context.Context, computerID int64, status model.ComputerStatus) (*model.ReclaimResult, error)
}

type assignmentRepository struct {
	DB      *sql.DB
	timeout time.Duration
}

// NewAssignmentRepository creates a new AssignmentRepository. timeout bounds
// each operation; zero means 5 seconds.
func NewAssignmentRepository(db *sql.DB, timeout time.Duration) AssignmentRepository {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &assignmentRepository{DB: db, timeout: timeout}
}

// AssignComputer opens an assignment of the computer named hostname to the
// employee. The computer row stays locked until commit, so concurrent callers
// for the same hostname queue behind the winner and then see its open row.
// The partial unique index on open assignments backs this up at the storage
// level.
func (r *assignmentRepository) AssignComputer(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	assignment := model.ComputerAssignment{
		EmployeeID: employeeID,
		Hostname:   hostname,
	}

	err := database.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		var status model.ComputerStatus
		err := tx.QueryRowContext(ctx,
			`SELECT computer_id, status FROM computers WHERE hostname = $1 FOR UPDATE`,
			hostname,
		).Scan(&assignment.ComputerID, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrComputerNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve hostname: %w", err)
		}

		var open bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM computer_assignments WHERE computer_id = $1 AND returned_date IS NULL)`,
			assignment.ComputerID,
		).Scan(&open)
		if err != nil {
			return fmt.Errorf("failed to check open assignment: %w", err)
		}
		if open {
			return ErrComputerAlreadyAssigned
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO computer_assignments (employee_id, computer_id, assigned_date, returned_date)
			VALUES ($1, $2, NOW(), NULL)
			RETURNING assignment_id, assigned_date`,
			employeeID, assignment.ComputerID,
		).Scan(&assignment.ID, &assignment.AssignedDate)
		if err != nil {
			switch {
			case isUniqueViolation(err):
				return ErrComputerAlreadyAssigned
			case isForeignKeyViolation(err):
				if violatedConstraint(err) == fkComputerAssignmentComputer {
					return ErrComputerNotFound
				}
				return ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to insert computer assignment: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE computers SET status = $1, updated_at = NOW() WHERE computer_id = $2`,
			model.StatusAssigned, assignment.ComputerID,
		)
		if err != nil {
			return fmt.Errorf("failed to mark computer assigned: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

// AssignSoftware records that the software license is installed on the
// computer named hostname. The (software_id, computer_id) unique constraint
// rejects a concurrent duplicate that passes the pre-check.
func (r *assignmentRepository) AssignSoftware(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	assignment := model.SoftwareAssignment{
		SoftwareID: softwareID,
		Hostname:   hostname,
	}

	err := database.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`SELECT computer_id FROM computers WHERE hostname = $1`,
			hostname,
		).Scan(&assignment.ComputerID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrComputerNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to resolve hostname: %w", err)
		}

		var exists bool
		err = tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM software_assignments WHERE software_id = $1 AND computer_id = $2)`,
			softwareID, assignment.ComputerID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check software assignment: %w", err)
		}
		if exists {
			return ErrSoftwareAlreadyAssigned
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO software_assignments (software_id, computer_id, assigned_date)
			VALUES ($1, $2, NOW())
			RETURNING assignment_id, assigned_date`,
			softwareID, assignment.ComputerID,
		).Scan(&assignment.ID, &assignment.AssignedDate)
		if err != nil {
			switch {
			case isUniqueViolation(err):
				return ErrSoftwareAlreadyAssigned
			case isForeignKeyViolation(err):
				if violatedConstraint(err) == fkSoftwareAssignmentComputer {
					return ErrComputerNotFound
				}
				return ErrSoftwareNotFound
			}
			return fmt.Errorf("failed to insert software assignment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &assignment, nil
}

// ReclaimComputer moves the computer to status and closes its open
// assignment, if any, in the same transaction.
func (r *assignmentRepository) ReclaimComputer(ctx context.Context, computerID int64, status model.ComputerStatus) (*model.ReclaimResult, error) {
	if !status.Reclaimable() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := model.ReclaimResult{
		ComputerID: computerID,
		Status:     status,
	}

	err := database.WithTx(ctx, r.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE computers SET status = $1, updated_at = NOW() WHERE computer_id = $2`,
			status, computerID,
		)
		if err != nil {
			return fmt.Errorf("failed to update computer status: %w", err)
		}

		rowsAffected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrComputerNotFound
		}

		res, err = tx.ExecContext(ctx,
			`UPDATE computer_assignments SET returned_date = NOW() WHERE computer_id = $1 AND returned_date IS NULL`,
			computerID,
		)
		if err != nil {
			return fmt.Errorf("failed to close computer assignment: %w", err)
		}

		closed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		result.ClosedAssignment = closed > 0

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
