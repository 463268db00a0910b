package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, name, tax_id, contact_name, contact_email, contact_phone,
	address_line, city, country, payment_terms, active, created_at, updated_at`

// ClientRepo implementación de ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.TaxID), nullIfEmpty(c.ContactName),
		nullIfEmpty(c.ContactEmail), nullIfEmpty(c.ContactPhone), nullIfEmpty(c.AddressLine),
		nullIfEmpty(c.City), nullIfEmpty(c.Country), c.PaymentTerms, c.Active,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// Update reescribe el cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET
			name = $2, tax_id = $3, contact_name = $4, contact_email = $5, contact_phone = $6,
			address_line = $7, city = $8, country = $9, payment_terms = $10, active = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Name, nullIfEmpty(c.TaxID), nullIfEmpty(c.ContactName),
		nullIfEmpty(c.ContactEmail), nullIfEmpty(c.ContactPhone), nullIfEmpty(c.AddressLine),
		nullIfEmpty(c.City), nullIfEmpty(c.Country), c.PaymentTerms, c.Active, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update client %s: no existe", c.ID)
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	c, err := scanClient(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List clientes con paginación.
func (r *ClientRepo) List(ctx context.Context, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + `
		FROM clients
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	var taxID, contactName, contactEmail, contactPhone, addressLine, city, country *string
	err := row.Scan(
		&c.ID, &c.Name, &taxID, &contactName, &contactEmail, &contactPhone,
		&addressLine, &city, &country, &c.PaymentTerms, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.TaxID = deref(taxID)
	c.ContactName = deref(contactName)
	c.ContactEmail = deref(contactEmail)
	c.ContactPhone = deref(contactPhone)
	c.AddressLine = deref(addressLine)
	c.City = deref(city)
	c.Country = deref(country)
	return &c, nil
}
