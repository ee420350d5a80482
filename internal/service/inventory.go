package service

import (
	"context"
	"strings"

	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	apperrors "asset-management-api/pkg/errors"
	"asset-management-api/pkg/logger"
	"asset-management-api/pkg/validation"

	"github.com/sirupsen/logrus"
)

// InventoryService handles create, read, update and delete of computers,
// software and employees.
type InventoryService struct {
	computers repository.ComputerRepository
	software  repository.SoftwareRepository
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(computers repository.ComputerRepository, software repository.SoftwareRepository, employees repository.EmployeeRepository, log *logrus.Logger) *InventoryService {
	if log == nil {
		log = logger.Discard()
	}
	return &InventoryService{
		computers: computers,
		software:  software,
		employees: employees,
		logger:    log,
	}
}

func validationFailed(fields map[string]string) error {
	return apperrors.InvalidInputErrorWithDetails("Validation failed", fields)
}

// Computers

// CreateComputer validates and stores a new computer
func (s *InventoryService) CreateComputer(ctx context.Context, computer model.Computer) (*model.Computer, error) {
	computer.Hostname = strings.TrimSpace(computer.Hostname)
	if fields := validation.ValidateComputerInput(&computer); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.computers.CreateComputer(ctx, &computer); err != nil {
		return nil, mapRepositoryError(err, "create computer")
	}

	s.logger.WithFields(logrus.Fields{
		"computer_id": computer.ID,
		"hostname":    computer.Hostname,
		"status":      computer.Status,
	}).Info("Computer created")

	return &computer, nil
}

// ListComputers retrieves one page of computers
func (s *InventoryService) ListComputers(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Computer], error) {
	result, err := s.computers.ListComputers(ctx, params)
	if err != nil {
		return nil, mapRepositoryError(err, "list computers")
	}
	return result, nil
}

// GetComputer retrieves a computer by its ID
func (s *InventoryService) GetComputer(ctx context.Context, id int64) (*model.Computer, error) {
	computer, err := s.computers.GetComputerByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get computer")
	}
	return computer, nil
}

// UpdateComputer updates the descriptive fields of a computer and returns the
// stored record. Status changes go through the assignment engine.
func (s *InventoryService) UpdateComputer(ctx context.Context, id int64, updates model.Computer) (*model.Computer, error) {
	updates.Hostname = strings.TrimSpace(updates.Hostname)
	if fields := validation.ValidateComputerInputForUpdate(&updates); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.computers.UpdateComputer(ctx, id, updates); err != nil {
		return nil, mapRepositoryError(err, "update computer")
	}

	updated, err := s.computers.GetComputerByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get updated computer")
	}

	s.logger.WithField("computer_id", id).Info("Computer updated")
	return updated, nil
}

// DeleteComputer deletes a computer with no assignment history
func (s *InventoryService) DeleteComputer(ctx context.Context, id int64) error {
	if err := s.computers.DeleteComputer(ctx, id); err != nil {
		return mapRepositoryError(err, "delete computer")
	}

	s.logger.WithField("computer_id", id).Info("Computer deleted")
	return nil
}

// Software

// CreateSoftware validates and stores a new software license
func (s *InventoryService) CreateSoftware(ctx context.Context, software model.Software) (*model.Software, error) {
	software.Name = strings.TrimSpace(software.Name)
	if fields := validation.Struct(&software); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.software.CreateSoftware(ctx, &software); err != nil {
		return nil, mapRepositoryError(err, "create software")
	}

	s.logger.WithFields(logrus.Fields{
		"software_id":   software.ID,
		"software_name": software.Name,
	}).Info("Software created")

	return &software, nil
}

// ListSoftware retrieves one page of software licenses
func (s *InventoryService) ListSoftware(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Software], error) {
	result, err := s.software.ListSoftware(ctx, params)
	if err != nil {
		return nil, mapRepositoryError(err, "list software")
	}
	return result, nil
}

// GetSoftware retrieves a software license by its ID
func (s *InventoryService) GetSoftware(ctx context.Context, id int64) (*model.Software, error) {
	software, err := s.software.GetSoftwareByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get software")
	}
	return software, nil
}

// UpdateSoftware updates a software license and returns the stored record
func (s *InventoryService) UpdateSoftware(ctx context.Context, id int64, updates model.Software) (*model.Software, error) {
	updates.Name = strings.TrimSpace(updates.Name)
	if fields := validation.Struct(&updates); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.software.UpdateSoftware(ctx, id, updates); err != nil {
		return nil, mapRepositoryError(err, "update software")
	}

	updated, err := s.software.GetSoftwareByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get updated software")
	}

	s.logger.WithField("software_id", id).Info("Software updated")
	return updated, nil
}

// DeleteSoftware deletes a software license that is not installed anywhere
func (s *InventoryService) DeleteSoftware(ctx context.Context, id int64) error {
	if err := s.software.DeleteSoftware(ctx, id); err != nil {
		return mapRepositoryError(err, "delete software")
	}

	s.logger.WithField("software_id", id).Info("Software deleted")
	return nil
}

// Employees

// CreateEmployee validates and stores a new employee
func (s *InventoryService) CreateEmployee(ctx context.Context, employee model.Employee) (*model.Employee, error) {
	employee.ID = strings.TrimSpace(employee.ID)
	employee.Email = strings.ToLower(strings.TrimSpace(employee.Email))
	if fields := validation.Struct(&employee); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.employees.CreateEmployee(ctx, &employee); err != nil {
		return nil, mapRepositoryError(err, "create employee")
	}

	s.logger.WithField("employee_id", employee.ID).Info("Employee created")
	return &employee, nil
}

// ListEmployees retrieves one page of employees
func (s *InventoryService) ListEmployees(ctx context.Context, params repository.ListParams) (*repository.PaginatedResult[model.Employee], error) {
	result, err := s.employees.ListEmployees(ctx, params)
	if err != nil {
		return nil, mapRepositoryError(err, "list employees")
	}
	return result, nil
}

// GetEmployee retrieves an employee by id
func (s *InventoryService) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.employees.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get employee")
	}
	return employee, nil
}

// UpdateEmployee updates an employee and returns the stored record. The id in
// the path wins over any id in the body.
func (s *InventoryService) UpdateEmployee(ctx context.Context, id string, updates model.Employee) (*model.Employee, error) {
	updates.ID = id
	updates.Email = strings.ToLower(strings.TrimSpace(updates.Email))
	if fields := validation.Struct(&updates); fields != nil {
		return nil, validationFailed(fields)
	}

	if err := s.employees.UpdateEmployee(ctx, id, updates); err != nil {
		return nil, mapRepositoryError(err, "update employee")
	}

	updated, err := s.employees.GetEmployeeByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err, "get updated employee")
	}

	s.logger.WithField("employee_id", id).Info("Employee updated")
	return updated, nil
}

// DeleteEmployee deletes an employee with no assignment history
func (s *InventoryService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employees.DeleteEmployee(ctx, id); err != nil {
		return mapRepositoryError(err, "delete employee")
	}

	s.logger.WithField("employee_id", id).Info("Employee deleted")
	return nil
}
