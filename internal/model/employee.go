package model

import "time"

// Employee represents a person assets can be assigned to.
type Employee struct {
	ID          string    `json:"employee_id" validate:"required,max=32,employeeid"`
	Name        string    `json:"name" validate:"required,max=255"`
	JobTitle    string    `json:"job_title,omitempty" validate:"max=255"`
	Department  string    `json:"department,omitempty" validate:"max=255"`
	PhoneNumber string    `json:"phone_number,omitempty" validate:"max=64"`
	Email       string    `json:"email" validate:"required,email,max=255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
