package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Custom errors for better error handling
var (
	ErrComputerNotFound = errors.New("computer not found")
	ErrSoftwareNotFound = errors.New("software not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrComputerAlreadyAssigned = errors.New("computer already has an open assignment")
	ErrSoftwareAlreadyAssigned = errors.New("software is already assigned to this computer")

	ErrDuplicateComputer = errors.New("computer with this hostname, asset number or MAC address already exists")
	ErrDuplicateEmployee = errors.New("employee with this id or email already exists")

	// ErrInUse is returned when deleting a record that assignment rows still
	// reference.
	ErrInUse = errors.New("record is referenced by assignments")

	ErrInvalidStatus = errors.New("invalid computer status")
)

// Foreign keys whose violation means the computer row disappeared rather
// than the other referenced row.
const (
	fkComputerAssignmentComputer = "computer_assignments_computer_fk"
	fkSoftwareAssignmentComputer = "software_assignments_computer_fk"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pqCode(err error) (string, string, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code), pqErr.Constraint, true
	}
	return "", "", false
}

// isUniqueViolation reports whether err is a unique_violation.
func isUniqueViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a foreign_key_violation.
func isForeignKeyViolation(err error) bool {
	code, _, ok := pqCode(err)
	return ok && code == pgForeignKeyViolation
}

// violatedConstraint returns the constraint name carried by a pq error.
func violatedConstraint(err error) string {
	_, constraint, _ := pqCode(err)
	return constraint
}
