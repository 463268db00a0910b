package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

// VendorUseCase catálogo de agencias proveedoras de personal.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso con el puerto de persistencia.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

// Create da de alta un proveedor.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	v := &entity.Vendor{
		ID:           uuid.New().String(),
		Name:         in.Name,
		TaxID:        in.TaxID,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		PaymentTerms: in.PaymentTerms,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return entityToVendorResponse(v), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return entityToVendorResponse(v), nil
}

// List lista proveedores con paginación.
func (uc *VendorUseCase) List(ctx context.Context, limit, offset int) ([]dto.VendorResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *entityToVendorResponse(v))
	}
	return items, nil
}

func entityToVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	if v == nil {
		return nil
	}
	return &dto.VendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		TaxID:        v.TaxID,
		ContactName:  v.ContactName,
		ContactEmail: v.ContactEmail,
		ContactPhone: v.ContactPhone,
		PaymentTerms: v.PaymentTerms,
		Active:       v.Active,
	}
}
