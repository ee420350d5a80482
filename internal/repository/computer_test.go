package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"asset-management-api/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var computerRowColumns = []string{
	"computer_id", "hostname", "asset_number", "mac_address", "type", "model", "os_version",
	"purchase_date", "warranty_end_date", "status", "created_at", "updated_at",
}

func setupComputerRepo(t testing.TB) (*sql.DB, sqlmock.Sqlmock, ComputerRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewComputerRepository(db)
}

func TestNewComputerRepository(t *testing.T) {
	db, _, repo := setupComputerRepo(t)
	defer db.Close()

	assert.NotNil(t, repo)
}

func TestCreateComputer_Success(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	now := time.Now()
	computer := &model.Computer{
		Hostname:    "LAPTOP-001",
		AssetNumber: "A-1001",
		MACAddress:  "AA:BB:CC:DD:EE:FF",
		Type:        "laptop",
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO computers (hostname, asset_number, mac_address, type, model, os_version, purchase_date, warranty_end_date, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING computer_id, created_at, updated_at`)).
		WithArgs("LAPTOP-001", "A-1001", "AA:BB:CC:DD:EE:FF", "laptop", "", "", nil, nil, "in_stock").
		WillReturnRows(sqlmock.NewRows([]string{"computer_id", "created_at", "updated_at"}).AddRow(7, now, now))

	err := repo.CreateComputer(context.Background(), computer)

	require.NoError(t, err)
	assert.Equal(t, int64(7), computer.ID)
	assert.Equal(t, model.StatusInStock, computer.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComputer_Duplicate(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO computers`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "computers_hostname_key"})

	err := repo.CreateComputer(context.Background(), &model.Computer{Hostname: "LAPTOP-001"})

	assert.True(t, errors.Is(err, ErrDuplicateComputer))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComputer_RejectsAssignedStatus(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	err := repo.CreateComputer(context.Background(), &model.Computer{Hostname: "LAPTOP-001", Status: model.StatusAssigned})

	assert.True(t, errors.Is(err, ErrInvalidStatus))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComputers_Sorted(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(computerRowColumns).
		AddRow(9, "DESKTOP-002", "A-2", "AA:BB:CC:DD:EE:02", "desktop", "", "", nil, nil, "in_stock", now, now).
		AddRow(7, "LAPTOP-001", "A-1", "AA:BB:CC:DD:EE:01", "laptop", "", "", now, nil, "assigned", now, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM computers ORDER BY hostname DESC, computer_id ASC OFFSET $1 LIMIT $2`)).
		WithArgs(0, 10).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM computers`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	result, err := repo.ListComputers(context.Background(), ListParams{
		Pagination: PaginationParams{Offset: 0, Limit: 10},
		Sort:       SortParams{Field: "hostname", Order: "desc"},
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, "DESKTOP-002", result.Items[0].Hostname)
	assert.Nil(t, result.Items[0].PurchaseDate)
	assert.NotNil(t, result.Items[1].PurchaseDate)
	assert.Equal(t, model.StatusAssigned, result.Items[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListComputers_UnknownSortFieldUsesDefault(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM computers ORDER BY computer_id ASC OFFSET $1 LIMIT $2`)).
		WithArgs(20, 10).
		WillReturnRows(sqlmock.NewRows(computerRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM computers`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	result, err := repo.ListComputers(context.Background(), ListParams{
		Pagination: PaginationParams{Offset: 20, Limit: 10},
		Sort:       SortParams{Field: "1; DROP TABLE computers"},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetComputerByID_NotFound(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM computers WHERE computer_id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(computerRowColumns))

	computer, err := repo.GetComputerByID(context.Background(), 404)

	assert.Nil(t, computer)
	assert.True(t, errors.Is(err, ErrComputerNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComputer_DoesNotWriteStatus(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	computer := model.Computer{
		Hostname:    "LAPTOP-001",
		AssetNumber: "A-1001",
		MACAddress:  "AA:BB:CC:DD:EE:FF",
		Status:      model.StatusRetired,
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE computers SET hostname = $1, asset_number = $2, mac_address = $3, type = $4, model = $5, os_version = $6, purchase_date = $7, warranty_end_date = $8, updated_at = NOW() WHERE computer_id = $9`)).
		WithArgs("LAPTOP-001", "A-1001", "AA:BB:CC:DD:EE:FF", "", "", "", nil, nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateComputer(context.Background(), 7, computer)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateComputer_NotFound(t *testing.T) {
	db, mock, repo := setupComputerRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE computers`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateComputer(context.Background(), 7, model.Computer{Hostname: "LAPTOP-001"})

	assert.True(t, errors.Is(err, ErrComputerNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteComputer(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		expected error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM computers WHERE computer_id = $1`)).
					WithArgs(int64(7)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM computers WHERE computer_id = $1`)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expected: ErrComputerNotFound,
		},
		{
			name: "has assignment history",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM computers WHERE computer_id = $1`)).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "computer_assignments_computer_fk"})
			},
			expected: ErrInUse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, repo := setupComputerRepo(t)
			defer db.Close()

			tt.setup(mock)
			err := repo.DeleteComputer(context.Background(), 7)

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.expected), "got %v", err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
