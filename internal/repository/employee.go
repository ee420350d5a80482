package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"asset-management-api/internal/model"
)

// EmployeeRepository is an interface for interacting with employee data.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	ListEmployees(ctx context.Context, params ListParams) (*PaginatedResult[model.Employee], error)
	GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id string, employee model.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}

const employeeColumns = `employee_id, name, job_title, department, phone_number, email, created_at, updated_at`

type employeeRepository struct {
	DB *sql.DB
}

// NewEmployeeRepository creates a new EmployeeRepository.
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{DB: db}
}

func scanEmployee(row rowScanner, e *model.Employee) error {
	return row.Scan(&e.ID, &e.Name, &e.JobTitle, &e.Department, &e.PhoneNumber, &e.Email, &e.CreatedAt, &e.UpdatedAt)
}

// CreateEmployee adds a new employee. The id is supplied by the caller.
func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO employees (employee_id, name, job_title, department, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		employee.ID,
		employee.Name,
		employee.JobTitle,
		employee.Department,
		employee.PhoneNumber,
		employee.Email,
	).Scan(&employee.CreatedAt, &employee.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmployee, employee.ID)
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// ListEmployees retrieves one page of employees in the requested order.
func (r *employeeRepository) ListEmployees(ctx context.Context, params ListParams) (*PaginatedResult[model.Employee], error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees
		ORDER BY %s
		OFFSET $1 LIMIT $2`, employeeColumns, employeeSort.orderBy(params.Sort))

	rows, err := r.DB.QueryContext(ctx, query, params.Pagination.Offset, params.Pagination.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := scanEmployee(rows, &e); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	var totalCount int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get total count of employees: %w", err)
	}

	return &PaginatedResult[model.Employee]{
		Items:      employees,
		TotalCount: totalCount,
	}, nil
}

// GetEmployeeByID retrieves a single employee by id.
func (r *employeeRepository) GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1`, employeeColumns)

	var e model.Employee
	if err := scanEmployee(r.DB.QueryRowContext(ctx, query, id), &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return &e, nil
}

// UpdateEmployee updates an employee. The id itself cannot change.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, id string, employee model.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE employees
		SET name = $1, job_title = $2, department = $3, phone_number = $4, email = $5, updated_at = NOW()
		WHERE employee_id = $6`

	result, err := r.DB.ExecContext(ctx, query,
		employee.Name,
		employee.JobTitle,
		employee.Department,
		employee.PhoneNumber,
		employee.Email,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateEmployee, employee.Email)
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// DeleteEmployee deletes an employee with no assignment history.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: employee %s", ErrInUse, id)
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
