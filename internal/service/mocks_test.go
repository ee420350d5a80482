package service

import (
	"context"
	"sync"

	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
)

type mockAssignmentRepo struct {
	AssignComputerFunc  func(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error)
	AssignSoftwareFunc  func(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error)
	ReclaimComputerFunc func(ctx context.Context, computerID int64, status model.ComputerStatus) (*model.ReclaimResult, error)

	calls int
}

func (m *mockAssignmentRepo) AssignComputer(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error) {
	m.calls++
	return m.AssignComputerFunc(ctx, employeeID, hostname)
}

func (m *mockAssignmentRepo) AssignSoftware(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error) {
	m.calls++
	return m.AssignSoftwareFunc(ctx, softwareID, hostname)
}

func (m *mockAssignmentRepo) ReclaimComputer(ctx context.Context, computerID int64, status model.ComputerStatus) (*model.ReclaimResult, error) {
	m.calls++
	return m.ReclaimComputerFunc(ctx, computerID, status)
}

type mockReportRepo struct {
	OpenComputerAssignmentsFunc   func(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error)
	SoftwareInstallationsFunc     func(ctx context.Context) ([]model.SoftwareInstallation, error)
	ComputerAssignmentHistoryFunc func(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error)
	CountOpenAssignmentsFunc      func(ctx context.Context, employeeID string) (int, error)
}

func (m *mockReportRepo) OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error) {
	return m.OpenComputerAssignmentsFunc(ctx, employeeID)
}

func (m *mockReportRepo) SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error) {
	return m.SoftwareInstallationsFunc(ctx)
}

func (m *mockReportRepo) ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error) {
	return m.ComputerAssignmentHistoryFunc(ctx, computerID)
}

func (m *mockReportRepo) CountOpenAssignments(ctx context.Context, employeeID string) (int, error) {
	return m.CountOpenAssignmentsFunc(ctx, employeeID)
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []AssignmentNotification
	err  error
}

func (m *mockNotifier) SendAssignmentNotification(ctx context.Context, n AssignmentNotification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, n)
	return m.err
}

func (m *mockNotifier) Sent() []AssignmentNotification {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]AssignmentNotification(nil), m.sent...)
}

type outcome struct {
	kind    string
	outcome string
}

type mockRecorder struct {
	mu       sync.Mutex
	outcomes []outcome
}

func (m *mockRecorder) ObserveAssignment(kind, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome{kind, result})
}

type mockComputerRepo struct {
	CreateComputerFunc  func(ctx context.Context, computer *model.Computer) error
	ListComputersFunc   func(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error)
	GetComputerByIDFunc func(ctx context.Context, id int64) (*model.Computer, error)
	UpdateComputerFunc  func(ctx context.Context, id int64, computer model.Computer) error
	DeleteComputerFunc  func(ctx context.Context, id int64) error
}

func (m *mockComputerRepo) CreateComputer(ctx context.Context, computer *model.Computer) error {
	return m.CreateComputerFunc(ctx, computer)
}

func (m *mockComputerRepo) ListComputers(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error) {
	return m.ListComputersFunc(ctx, params)
}

func (m *mockComputerRepo) GetComputerByID(ctx context.Context, id int64) (*model.Computer, error) {
	return m.GetComputerByIDFunc(ctx, id)
}

func (m *mockComputerRepo) UpdateComputer(ctx context.Context, id int64, computer model.Computer) error {
	return m.UpdateComputerFunc(ctx, id, computer)
}

func (m *mockComputerRepo) DeleteComputer(ctx context.Context, id int64) error {
	return m.DeleteComputerFunc(ctx, id)
}

type mockEmployeeRepo struct {
	CreateEmployeeFunc  func(ctx context.Context, employee *model.Employee) error
	ListEmployeesFunc   func(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Employee], error)
	GetEmployeeByIDFunc func(ctx context.Context, id string) (*model.Employee, error)
	UpdateEmployeeFunc  func(ctx context.Context, id string, employee model.Employee) error
	DeleteEmployeeFunc  func(ctx context.Context, id string) error
}

func (m *mockEmployeeRepo) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	return m.CreateEmployeeFunc(ctx, employee)
}

func (m *mockEmployeeRepo) ListEmployees(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Employee], error) {
	return m.ListEmployeesFunc(ctx, params)
}

func (m *mockEmployeeRepo) GetEmployeeByID(ctx context.Context, id string) (*model.Employee, error) {
	return m.GetEmployeeByIDFunc(ctx, id)
}

func (m *mockEmployeeRepo) UpdateEmployee(ctx context.Context, id string, employee model.Employee) error {
	return m.UpdateEmployeeFunc(ctx, id, employee)
}

func (m *mockEmployeeRepo) DeleteEmployee(ctx context.Context, id string) error {
	return m.DeleteEmployeeFunc(ctx, id)
}
