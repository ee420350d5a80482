package model

import (
	"time"
)

// ComputerStatus is the lifecycle state of a computer.
type ComputerStatus string

const (
	StatusInStock  ComputerStatus = "in_stock"
	StatusAssigned ComputerStatus = "assigned"
	StatusInRepair ComputerStatus = "in_repair"
	StatusRetired  ComputerStatus = "retired"
)

// Valid reports whether s is a known status.
func (s ComputerStatus) Valid() bool {
	switch s {
	case StatusInStock, StatusAssigned, StatusInRepair, StatusRetired:
		return true
	}
	return false
}

// Reclaimable reports whether a computer may be moved back into s by the
// reclaim path. Only the assignment engine may set StatusAssigned.
func (s ComputerStatus) Reclaimable() bool {
	return s.Valid() && s != StatusAssigned
}

// Computer represents a computer in the inventory.
type Computer struct {
	ID              int64          `json:"computer_id"`
	Hostname        string         `json:"hostname" validate:"required,max=255"`
	AssetNumber     string         `json:"asset_number" validate:"required,max=64"`
	MACAddress      string         `json:"mac_address" validate:"required"`
	Type            string         `json:"type,omitempty" validate:"max=64"`
	Model           string         `json:"model,omitempty" validate:"max=128"`
	OSVersion       string         `json:"os_version,omitempty" validate:"max=128"`
	PurchaseDate    *time.Time     `json:"purchase_date,omitempty"`
	WarrantyEndDate *time.Time     `json:"warranty_end_date,omitempty"`
	Status          ComputerStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
