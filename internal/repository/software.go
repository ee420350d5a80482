package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"asset-management-api/internal/model"
)

// SoftwareRepository is an interface for interacting with software license data.
type SoftwareRepository interface {
	CreateSoftware(ctx context.Context, software *model.Software) error
	ListSoftware(ctx context.Context, params ListParams) (*PaginatedResult[model.Software], error)
	GetSoftwareByID(ctx context.Context, id int64) (*model.Software, error)
	UpdateSoftware(ctx context.Context, id int64, software model.Software) error
	DeleteSoftware(ctx context.Context, id int64) error
}

const softwareColumns = `software_id, software_name, license_key, registered_account, version,
	purchase_date, status, license_type, created_at, updated_at`

type softwareRepository struct {
	DB *sql.DB
}

// NewSoftwareRepository creates a new SoftwareRepository.
func NewSoftwareRepository(db *sql.DB) SoftwareRepository {
	return &softwareRepository{DB: db}
}

func scanSoftware(row rowScanner, s *model.Software) error {
	return row.Scan(&s.ID, &s.Name, &s.LicenseKey, &s.RegisteredAccount, &s.Version,
		&s.PurchaseDate, &s.Status, &s.LicenseType, &s.CreatedAt, &s.UpdatedAt)
}

// CreateSoftware adds a new software license.
func (r *softwareRepository) CreateSoftware(ctx context.Context, software *model.Software) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		INSERT INTO software (software_name, license_key, registered_account, version,
			purchase_date, status, license_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING software_id, created_at, updated_at`

	err := r.DB.QueryRowContext(ctx, query,
		software.Name,
		software.LicenseKey,
		software.RegisteredAccount,
		software.Version,
		software.PurchaseDate,
		software.Status,
		software.LicenseType,
	).Scan(&software.ID, &software.CreatedAt, &software.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create software: %w", err)
	}

	return nil
}

// ListSoftware retrieves one page of software licenses in the requested order.
func (r *softwareRepository) ListSoftware(ctx context.Context, params ListParams) (*PaginatedResult[model.Software], error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM software
		ORDER BY %s
		OFFSET $1 LIMIT $2`, softwareColumns, softwareSort.orderBy(params.Sort))

	rows, err := r.DB.QueryContext(ctx, query, params.Pagination.Offset, params.Pagination.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query software: %w", err)
	}
	defer rows.Close()

	items := []model.Software{}
	for rows.Next() {
		var s model.Software
		if err := scanSoftware(rows, &s); err != nil {
			return nil, fmt.Errorf("failed to scan software: %w", err)
		}
		items = append(items, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	var totalCount int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM software`).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to get total count of software: %w", err)
	}

	return &PaginatedResult[model.Software]{
		Items:      items,
		TotalCount: totalCount,
	}, nil
}

// GetSoftwareByID retrieves a single software license by its ID.
func (r *softwareRepository) GetSoftwareByID(ctx context.Context, id int64) (*model.Software, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM software WHERE software_id = $1`, softwareColumns)

	var s model.Software
	if err := scanSoftware(r.DB.QueryRowContext(ctx, query, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSoftwareNotFound
		}
		return nil, fmt.Errorf("failed to get software by ID: %w", err)
	}
	return &s, nil
}

// UpdateSoftware updates a software license.
func (r *softwareRepository) UpdateSoftware(ctx context.Context, id int64, software model.Software) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE software
		SET software_name = $1, license_key = $2, registered_account = $3, version = $4,
			purchase_date = $5, status = $6, license_type = $7, updated_at = NOW()
		WHERE software_id = $8`

	result, err := r.DB.ExecContext(ctx, query,
		software.Name,
		software.LicenseKey,
		software.RegisteredAccount,
		software.Version,
		software.PurchaseDate,
		software.Status,
		software.LicenseType,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update software: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSoftwareNotFound
	}

	return nil
}

// DeleteSoftware deletes a software license that is not installed anywhere.
func (r *softwareRepository) DeleteSoftware(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.DB.ExecContext(ctx, `DELETE FROM software WHERE software_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: software %d", ErrInUse, id)
		}
		return fmt.Errorf("failed to delete software: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSoftwareNotFound
	}

	return nil
}
