package model

import "time"

// ComputerAssignment binds one computer to one employee. The assignment is
// open while ReturnedDate is nil.
type ComputerAssignment struct {
	ID           int64      `json:"assignment_id"`
	EmployeeID   string     `json:"employee_id"`
	ComputerID   int64      `json:"computer_id"`
	Hostname     string     `json:"hostname,omitempty"`
	AssignedDate time.Time  `json:"assigned_date"`
	ReturnedDate *time.Time `json:"returned_date"`
}

// Open reports whether the assignment has not been closed.
func (a ComputerAssignment) Open() bool {
	return a.ReturnedDate == nil
}

// SoftwareAssignment records a software license installed on a computer.
type SoftwareAssignment struct {
	ID           int64     `json:"assignment_id"`
	SoftwareID   int64     `json:"software_id"`
	ComputerID   int64     `json:"computer_id"`
	Hostname     string    `json:"hostname,omitempty"`
	AssignedDate time.Time `json:"assigned_date"`
}

// ReclaimResult describes the outcome of returning a computer to the pool.
type ReclaimResult struct {
	ComputerID       int64          `json:"computer_id"`
	Status           ComputerStatus `json:"status"`
	ClosedAssignment bool           `json:"closed_assignment"`
}
