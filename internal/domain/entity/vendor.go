package entity

import "time"

// Vendor proveedor de personal (agencia) asociado a asignaciones C2C.
type Vendor struct {
	ID           string
	Name         string
	TaxID        string
	ContactName  string
	ContactEmail string
	ContactPhone string
	PaymentTerms int // días
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
