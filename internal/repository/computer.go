package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"asset-management-api/internal/model"
)

// ComputerRepository is an interface for interacting with computer data.
type ComputerRepository interface {
	CreateComputer(ctx context.Context, computer *model.Computer) error
	ListComputers(ctx context.Context, params ListParams) (*PaginatedResult[model.Computer], error)
	GetComputerByID(ctx context.Context, id int64) (*model.Computer, error)
	UpdateComputer(ctx context.Context, id int64, computer model.Computer) error
	DeleteComputer(ctx context.Context, id int64) error
}

const computerColumns = `computer_id, hostname, asset_number, mac_address, type, model, os_version,
	purchase_date, warranty_end_date, status, created_at, updated_at`

// computerRepository is the concrete implementation of the ComputerRepository interface.
type computerRepository struct {
	DB *sql.DB
}

// NewComputerRepository creates a new ComputerRepository.
func NewComputerRepository(db *sql.DB) ComputerRepository {
	return &computerRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComputer(row rowScanner, c *model.Computer) error {
	return row.Scan(&c.ID, &c.Hostname, &c.AssetNumber, &c.MACAddress, &c.Type, &c.Model, &c.OSVersion,
		&c.PurchaseDate, &c.WarrantyEndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

// CreateComputer adds a new computer to the database and fills in its
// generated id and timestamps.
func (r *computerRepository) CreateComputer(ctx context.Context, computer *model.Computer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if computer.Status == "" {
		computer.Status = model.StatusInStock
	}
	if !computer.Status.Reclaimable() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, computer.Status)
	}

	query := `
		INSERT INTO computers (hostname, asset_number, mac_address, type, model, os_version,
			purchase_date, warranty_end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING computer_id, created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		computer.Hostname,
		computer.AssetNumber,
		computer.MACAddress,
		computer.Type,
		computer.Model,
		computer.OSVersion,
		computer.PurchaseDate,
		computer.WarrantyEndDate,
		computer.Status,
	).Scan(&computer.ID, &computer.CreatedAt, &computer.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateComputer, computer.Hostname)
		}
		return fmt.Errorf("failed to create computer: %w", err)
	}

	return nil
}

// ListComputers retrieves one page of computers in the requested order.
func (r *computerRepository) ListComputers(ctx context.Context, params ListParams) (*PaginatedResult[model.Computer], error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM computers
		ORDER BY %s
		OFFSET $1 LIMIT $2`, computerColumns, computerSort.orderBy(params.Sort))

	rows, err := r.DB.QueryContext(ctx, query, params.Pagination.Offset, params.Pagination.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query computers: %w", err)
	}
	defer rows.Close()

	computers := []model.Computer{}
	for rows.Next() {
		var c model.Computer
		if err := scanComputer(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan computer: %w", err)
		}
		computers = append(computers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Get total count of computers for pagination
	var totalCount int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM computers`).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get total count of computers: %w", err)
	}

	return &PaginatedResult[model.Computer]{
		Items:      computers,
		TotalCount: totalCount,
	}, nil
}

// GetComputerByID retrieves a single computer by its ID.
func (r *computerRepository) GetComputerByID(ctx context.Context, id int64) (*model.Computer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM computers WHERE computer_id = $1`, computerColumns)

	var c model.Computer
	if err := scanComputer(r.DB.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrComputerNotFound
		}
		return nil, fmt.Errorf("failed to get computer by ID: %w", err)
	}
	return &c, nil
}

// UpdateComputer updates the descriptive fields of a computer. Status is
// owned by the assignment and reclaim paths and is never written here.
func (r *computerRepository) UpdateComputer(ctx context.Context, id int64, computer model.Computer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE computers
		SET hostname = $1, asset_number = $2, mac_address = $3, type = $4, model = $5, os_version = $6,
			purchase_date = $7, warranty_end_date = $8, updated_at = NOW()
		WHERE computer_id = $9`

	result, err := r.DB.ExecContext(ctx, query,
		computer.Hostname,
		computer.AssetNumber,
		computer.MACAddress,
		computer.Type,
		computer.Model,
		computer.OSVersion,
		computer.PurchaseDate,
		computer.WarrantyEndDate,
		id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateComputer, computer.Hostname)
		}
		return fmt.Errorf("failed to update computer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrComputerNotFound
	}

	return nil
}

// DeleteComputer deletes a computer that has never been assigned.
func (r *computerRepository) DeleteComputer(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM computers WHERE computer_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: computer %d", ErrInUse, id)
		}
		return fmt.Errorf("failed to delete computer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrComputerNotFound
	}

	return nil
}
