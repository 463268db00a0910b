package dto

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	AddressLine  string `json:"address_line,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	PaymentTerms int    `json:"payment_terms,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	AddressLine  string `json:"address_line,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	PaymentTerms int    `json:"payment_terms,omitempty"`
	Active       bool   `json:"active"`
}

// CreateVendorRequest body para POST /api/vendors.
type CreateVendorRequest struct {
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	PaymentTerms int    `json:"payment_terms,omitempty"`
}

// VendorResponse proveedor en respuestas.
type VendorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	PaymentTerms int    `json:"payment_terms,omitempty"`
	Active       bool   `json:"active"`
}
