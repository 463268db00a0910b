package entity

import "time"

// Client empresa cliente: destino de asignaciones y de la cola de aprobación
// de cliente.
type Client struct {
	ID           string
	Name         string
	TaxID        string
	ContactName  string
	ContactEmail string
	ContactPhone string
	AddressLine  string
	City         string
	Country      string
	PaymentTerms int // días
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
