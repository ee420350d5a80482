package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"asset-management-api/internal/config"
	"asset-management-api/internal/database"
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"asset-management-api/pkg/logger"

	"github.com/stretchr/testify/require"
)

// loadTestConfig builds a config that points at the test database.
func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5452"))
	require.NoError(t, err)

	return &config.Config{
		Port:     8080,
		LogLevel: "info",
		Database: config.DatabaseConfig{
			Host:         getEnv("TEST_DB_HOST", "127.0.0.1"),
			Port:         port,
			User:         getEnv("TEST_DB_USER", "postgres"),
			Password:     getEnv("TEST_DB_PASSWORD", "postgres"),
			Name:         getEnv("TEST_DB_NAME", "postgres"),
			SSLMode:      "disable",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		Assignment: config.AssignmentConfig{
			OperationTimeout:  5 * time.Second,
			EmployeeThreshold: 3,
		},
		Security: config.SecurityConfig{
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
			RequestTimeout: 10 * time.Second,
		},
	}
}

// initTestDatabase connects, migrates and empties the test database. The
// test is skipped in short mode or when no database is reachable.
func initTestDatabase(t *testing.T) (*sql.DB, *config.Config) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}

	cfg := loadTestConfig(t)
	db, err := database.InitDB(cfg)
	if err != nil {
		t.Skipf("Failed to connect to test database: %v. Ensure test database is running.", err)
	}

	require.NoError(t, database.Migrate(db, logger.Discard()))
	cleanDatabase(t, db)

	t.Cleanup(func() {
		cleanDatabase(t, db)
		db.Close()
	})
	return db, cfg
}

func cleanDatabase(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE TABLE software_assignments, computer_assignments, software, computers, employees RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Logf("Warning: Failed to clean database: %v", err)
	}
}

// seed creates the records most scenarios start from: employee E001 and the
// in-stock computer LAPTOP-001.
func seed(t *testing.T, db *sql.DB) (model.Employee, model.Computer) {
	t.Helper()
	ctx := context.Background()

	employee := model.Employee{ID: "E001", Name: "Alice Example", Department: "Engineering", Email: "alice@example.com"}
	require.NoError(t, repository.NewEmployeeRepository(db).CreateEmployee(ctx, &employee))

	computer := createComputer(t, db, "LAPTOP-001", "A-0001", "00:11:22:33:44:01")
	return employee, computer
}

func createComputer(t *testing.T, db *sql.DB, hostname, assetNumber, mac string) model.Computer {
	t.Helper()

	computer := model.Computer{
		Hostname:    hostname,
		AssetNumber: assetNumber,
		MACAddress:  mac,
		Type:        "laptop",
		Model:       "X1",
		Status:      model.StatusInStock,
	}
	require.NoError(t, repository.NewComputerRepository(db).CreateComputer(context.Background(), &computer))
	return computer
}

func createEmployee(t *testing.T, db *sql.DB, id string) model.Employee {
	t.Helper()

	employee := model.Employee{ID: id, Name: "Employee " + id, Email: id + "@example.com"}
	require.NoError(t, repository.NewEmployeeRepository(db).CreateEmployee(context.Background(), &employee))
	return employee
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func doJSON(t *testing.T, h http.Handler, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func parseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), target), rr.Body.String())
}
