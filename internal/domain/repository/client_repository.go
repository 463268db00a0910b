package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// ClientRepository puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, c *entity.Client) error
	Update(ctx context.Context, c *entity.Client) error
	GetByID(ctx context.Context, id string) (*entity.Client, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Client, error)
}

// VendorRepository puerto de persistencia para Vendor.
type VendorRepository interface {
	Create(ctx context.Context, v *entity.Vendor) error
	Update(ctx context.Context, v *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
}
