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

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, tax_id, contact_name, contact_email, contact_phone,
	payment_terms, active, created_at, updated_at`

// VendorRepo implementación de VendorRepository sobre PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor.
func (r *VendorRepo) Create(ctx context.Context, v *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, nullIfEmpty(v.TaxID), nullIfEmpty(v.ContactName),
		nullIfEmpty(v.ContactEmail), nullIfEmpty(v.ContactPhone),
		v.PaymentTerms, v.Active, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// Update reescribe el proveedor.
func (r *VendorRepo) Update(ctx context.Context, v *entity.Vendor) error {
	query := `
		UPDATE vendors SET
			name = $2, tax_id = $3, contact_name = $4, contact_email = $5, contact_phone = $6,
			payment_terms = $7, active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		v.ID, v.Name, nullIfEmpty(v.TaxID), nullIfEmpty(v.ContactName),
		nullIfEmpty(v.ContactEmail), nullIfEmpty(v.ContactPhone),
		v.PaymentTerms, v.Active, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update vendor %s: no existe", v.ID)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; nil si no existe.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// List proveedores con paginación.
func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var v entity.Vendor
	var taxID, contactName, contactEmail, contactPhone *string
	err := row.Scan(
		&v.ID, &v.Name, &taxID, &contactName, &contactEmail, &contactPhone,
		&v.PaymentTerms, &v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.TaxID = deref(taxID)
	v.ContactName = deref(contactName)
	v.ContactEmail = deref(contactEmail)
	v.ContactPhone = deref(contactPhone)
	return &v, nil
}
