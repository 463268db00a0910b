package dto

import "time"

// CreateEmployeeRequest body para POST /api/employees.
type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	ClientID   string `json:"client_id,omitempty"`
	HireDate   string `json:"hire_date"` // YYYY-MM-DD
}

// UpdateEmployeeRequest body para PUT /api/employees/:id.
type UpdateEmployeeRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	Title      string `json:"title,omitempty"`
	Department string `json:"department,omitempty"`
	ClientID   string `json:"client_id,omitempty"`
}

// EmployeeResponse ficha de empleado en respuestas.
type EmployeeResponse struct {
	ID                  string     `json:"id"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	Email               string     `json:"email"`
	Phone               string     `json:"phone,omitempty"`
	Title               string     `json:"title,omitempty"`
	Department          string     `json:"department,omitempty"`
	ClientID            string     `json:"client_id,omitempty"`
	OnboardingStatus    string     `json:"onboarding_status"`
	CanAccessTimesheets bool       `json:"can_access_timesheets"`
	HireDate            string     `json:"hire_date"`
	TerminateDate       *time.Time `json:"terminate_date,omitempty"`
}
