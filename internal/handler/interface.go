package handler

import (
	"context"

	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"asset-management-api/internal/service"
)

// AssignmentService is the business layer behind the assignment endpoints.
type AssignmentService interface {
	AssignComputer(ctx context.Context, employeeID, hostname string) (*model.ComputerAssignment, error)
	AssignSoftware(ctx context.Context, softwareID int64, hostname string) (*model.SoftwareAssignment, error)
	ReclaimComputer(ctx context.Context, computerID int64, newStatus string) (*model.ReclaimResult, error)
	OpenComputerAssignments(ctx context.Context, employeeID string) ([]model.OpenComputerAssignment, error)
	SoftwareInstallations(ctx context.Context) ([]model.SoftwareInstallation, error)
	ComputerAssignmentHistory(ctx context.Context, computerID int64) ([]model.AssignmentHistoryEntry, error)
}

// InventoryService is the business layer behind the record endpoints.
type InventoryService interface {
	CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error)
	ListComputers(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error)
	GetComputer(ctx context.Context, id int64) (*model.Computer, error)
	UpdateComputer(ctx context.Context, id int64, updates model.Computer) (*model.Computer, error)
	DeleteComputer(ctx context.Context, id int64) error

	CreateSoftware(ctx context.Context, software model.Software) (*model.Software, error)
	ListSoftware(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Software], error)
	GetSoftware(ctx context.Context, id int64) (*model.Software, error)
	UpdateSoftware(ctx context.Context, id int64, updates model.Software) (*model.Software, error)
	DeleteSoftware(ctx context.Context, id int64) error

	CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error)
	ListEmployees(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Employee], error)
	GetEmployee(ctx context.Context, id string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id string, updates model.Employee) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Ensure the services satisfy the handler contracts at compile time
var (
	_ AssignmentService = (*service.AssignmentService)(nil)
	_ InventoryService  = (*service.InventoryService)(nil)
)
