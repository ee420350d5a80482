package model

import "time"

// Software represents a software license record.
type Software struct {
	ID                int64      `json:"software_id"`
	Name              string     `json:"software_name" validate:"required,max=255"`
	LicenseKey        string     `json:"license_key,omitempty" validate:"max=255"`
	RegisteredAccount string     `json:"registered_account,omitempty" validate:"max=255"`
	Version           string     `json:"version,omitempty" validate:"max=64"`
	PurchaseDate      *time.Time `json:"purchase_date,omitempty"`
	Status            string     `json:"status,omitempty" validate:"max=32"`
	LicenseType       string     `json:"license_type,omitempty" validate:"max=64"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
