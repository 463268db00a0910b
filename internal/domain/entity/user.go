package entity

import "time"

// User cuenta de acceso a la API. EmployeeID vacío para cuentas que no
// corresponden a un empleado (admin, contabilidad externa).
type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string // employee | client_approver | accounting | admin
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
