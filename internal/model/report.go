package model

import "time"

// OpenComputerAssignment is a row of the "who has which computer" view.
type OpenComputerAssignment struct {
	AssignmentID int64     `db:"assignment_id" json:"assignment_id"`
	ComputerID   int64     `db:"computer_id" json:"computer_id"`
	Hostname     string    `db:"hostname" json:"hostname"`
	AssetNumber  string    `db:"asset_number" json:"asset_number"`
	Status       string    `db:"status" json:"status"`
	EmployeeID   string    `db:"employee_id" json:"employee_id"`
	EmployeeName string    `db:"name" json:"name"`
	Department   string    `db:"department" json:"department"`
	AssignedDate time.Time `db:"assigned_date" json:"assigned_date"`
}

// SoftwareInstallation joins a software assignment to the machine it is on
// and to that machine's current holder.
type SoftwareInstallation struct {
	Hostname             string     `db:"hostname" json:"hostname"`
	AssetNumber          string     `db:"asset_number" json:"asset_number"`
	Status               string     `db:"status" json:"status"`
	Model                string     `db:"model" json:"model"`
	Type                 string     `db:"type" json:"type"`
	OSVersion            string     `db:"os_version" json:"os_version"`
	SoftwareName         string     `db:"software_name" json:"software_name"`
	Version              string     `db:"version" json:"version"`
	EmployeeName         string     `db:"name" json:"name"`
	Department           string     `db:"department" json:"department"`
	SoftwareAssignedDate time.Time  `db:"software_assigned_date" json:"software_assigned_date"`
	ComputerAssignedDate *time.Time `db:"computer_assigned_date" json:"computer_assigned_date"`
}

// AssignmentHistoryEntry is one (possibly closed) assignment of a computer.
type AssignmentHistoryEntry struct {
	AssignmentID int64      `db:"assignment_id" json:"assignment_id"`
	EmployeeID   string     `db:"employee_id" json:"employee_id"`
	EmployeeName string     `db:"name" json:"name"`
	AssignedDate time.Time  `db:"assigned_date" json:"assigned_date"`
	ReturnedDate *time.Time `db:"returned_date" json:"returned_date"`
}
