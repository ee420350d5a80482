package handler

import (
	"context"

	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	apperrors "asset-management-api/pkg/errors"
)

// MockAssignmentService is a mock implementation of AssignmentService
type MockAssignmentService struct {
	AssignComputerFunc            func(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error)
	AssignSoftwareFunc            func(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error)
	ReclaimComputerFunc           func(ctx context.Context, computerID int64, newStatus string) (*model.ReclaimResult, error)
	OpenComputerAssignmentsFunc   func(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error)
	SoftwareInstallationsFunc     func(ctx context.Context) ([]model.SoftwareInstallation, error)
	ComputerAssignmentHistoryFunc func(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error)
}

func (m *MockAssignmentService) AssignComputer(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error) {
	if m.AssignComputerFunc != nil {
		return m.AssignComputerFunc(ctx, employeeID, hostname)
	}
	return &model.ComputerAssignment{}, nil
}

func (m *MockAssignmentService) AssignSoftware(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error) {
	if m.AssignSoftwareFunc != nil {
		return m.AssignSoftwareFunc(ctx, softwareID, hostname)
	}
	return &model.SoftwareAssignment{}, nil
}

func (m *MockAssignmentService) ReclaimComputer(ctx context.Context, computerID int64, newStatus string) (*model.ReclaimResult, error) {
	if m.ReclaimComputerFunc != nil {
		return m.ReclaimComputerFunc(ctx, computerID, newStatus)
	}
	return &model.ReclaimResult{}, nil
}

func (m *MockAssignmentService) OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error) {
	if m.OpenComputerAssignmentsFunc != nil {
		return m.OpenComputerAssignmentsFunc(ctx, employeeID)
	}
	return []model.OpenComputerAssignment{}, nil
}

func (m *MockAssignmentService) SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error) {
	if m.SoftwareInstallationsFunc != nil {
		return m.SoftwareInstallationsFunc(ctx)
	}
	return []model.SoftwareInstallation{}, nil
}

func (m *MockAssignmentService) ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error) {
	if m.ComputerAssignmentHistoryFunc != nil {
		return m.ComputerAssignmentHistoryFunc(ctx, computerID)
	}
	return []model.AssignmentHistoryEntry{}, nil
}

// MockInventoryService is a mock implementation of InventoryService. Only
// the methods exercised by the tests have function fields.
type MockInventoryService struct {
	CreateComputerFunc func(ctx context.Context, computer model.Computer) (*model.Computer, error)
	ListComputersFunc  func(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error)
	GetComputerFunc    func(ctx context.Context, id int64) (*model.Computer, error)
	UpdateComputerFunc func(ctx context.Context, id int64, updates model.Computer) (*model.Computer, error)
	DeleteComputerFunc func(ctx context.Context, id int64) error

	ListSoftwareFunc func(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Software], error)

	CreateEmployeeFunc func(ctx context.Context, employee model.Employee) (*model.Employee, error)
	GetEmployeeFunc    func(ctx context.Context, id string) (*model.Employee, error)
	DeleteEmployeeFunc func(ctx context.Context, id string) error
}

func (m *MockInventoryService) CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error) {
	if m.CreateComputerFunc != nil {
		return m.CreateComputerFunc(ctx, computer)
	}
	return &computer, nil
}

func (m *MockInventoryService) ListComputers(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error) {
	if m.ListComputersFunc != nil {
		return m.ListComputersFunc(ctx, params)
	}
	return &repository.PaginatedResult[model.Computer]{Items: []model.Computer{}}, nil
}

func (m *MockInventoryService) GetComputer(ctx context.Context, id int64) (*model.Computer, error) {
	if m.GetComputerFunc != nil {
		return m.GetComputerFunc(ctx, id)
	}
	return nil, apperrors.NotFoundError("computer")
}

func (m *MockInventoryService) UpdateComputer(ctx context.Context, id int64, updates model.Computer) (*model.Computer, error) {
	if m.UpdateComputerFunc != nil {
		return m.UpdateComputerFunc(ctx, id, updates)
	}
	updates.ID = id
	return &updates, nil
}

func (m *MockInventoryService) DeleteComputer(ctx context.Context, id int64) error {
	if m.DeleteComputerFunc != nil {
		return m.DeleteComputerFunc(ctx, id)
	}
	return nil
}

func (m *MockInventoryService) CreateSoftware(ctx context.Context, software model.Software) (*model.Software, error) {
	return &software, nil
}

func (m *MockInventoryService) ListSoftware(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Software], error) {
	if m.ListSoftwareFunc != nil {
		return m.ListSoftwareFunc(ctx, params)
	}
	return &repository.PaginatedResult[model.Software]{Items: []model.Software{}}, nil
}

func (m *MockInventoryService) GetSoftware(ctx context.Context, id int64) (*model.Software, error) {
	return nil, apperrors.NotFoundError("software")
}

func (m *MockInventoryService) UpdateSoftware(ctx context.Context, id int64, updates model.Software) (*model.Software, error) {
	updates.ID = id
	return &updates, nil
}

func (m *MockInventoryService) DeleteSoftware(ctx context.Context, id int64) error {
	return nil
}

func (m *MockInventoryService) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	if m.CreateEmployeeFunc != nil {
		return m.CreateEmployeeFunc(ctx, employee)
	}
	return &employee, nil
}

func (m *MockInventoryService) ListEmployees(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Employee], error) {
	return &repository.PaginatedResult[model.Employee]{Items: []model.Employee{}}, nil
}

func (m *MockInventoryService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	if m.GetEmployeeFunc != nil {
		return m.GetEmployeeFunc(ctx, id)
	}
	return nil, apperrors.NotFoundError("employee")
}

func (m *MockInventoryService) UpdateEmployee(ctx context.Context, id string, updates model.Employee) (*model.Employee, error) {
	updates.ID = id
	return &updates, nil
}

func (m *MockInventoryService) DeleteEmployee(ctx context.Context, id string) error {
	if m.DeleteEmployeeFunc != nil {
		return m.DeleteEmployeeFunc(ctx, id)
	}
	return nil
}

// MockPinger is a mock implementation of Pinger
type MockPinger struct {
	Err error
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Err
}
