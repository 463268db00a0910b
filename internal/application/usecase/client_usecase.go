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

// ClientUseCase catálogo de empresas cliente.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso con el puerto de persistencia.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create da de alta un cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		TaxID:        in.TaxID,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		AddressLine:  in.AddressLine,
		City:         in.City,
		Country:      in.Country,
		PaymentTerms: in.PaymentTerms,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return entityToClientResponse(c), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return entityToClientResponse(c), nil
}

// List lista clientes con paginación.
func (uc *ClientUseCase) List(ctx context.Context, limit, offset int) ([]dto.ClientResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToClientResponse(c))
	}
	return items, nil
}

// Update actualiza datos de contacto del cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	if in.TaxID != "" {
		c.TaxID = in.TaxID
	}
	c.ContactName = in.ContactName
	c.ContactEmail = in.ContactEmail
	c.ContactPhone = in.ContactPhone
	c.AddressLine = in.AddressLine
	c.City = in.City
	c.Country = in.Country
	if in.PaymentTerms > 0 {
		c.PaymentTerms = in.PaymentTerms
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return entityToClientResponse(c), nil
}

func entityToClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		AddressLine:  c.AddressLine,
		City:         c.City,
		Country:      c.Country,
		PaymentTerms: c.PaymentTerms,
		Active:       c.Active,
	}
}
