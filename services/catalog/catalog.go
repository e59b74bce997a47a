package catalog

import (
	"context"
	"fmt"

	productRepo "bakehouse/database/repository/product"
	"bakehouse/models"
)

// CatalogService manages the cake catalog. Public listing only shows
// active products; admins see everything.
type CatalogService interface {
	List(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo productRepo.ProductRepository
}

func (s *DefaultCatalogService) List(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListActive(ctx)
}

func (s *DefaultCatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultCatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog: product %s not found: %w", id, err)
	}
	return product, nil
}

func (s *DefaultCatalogService) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" || product.Price <= 0 {
		return fmt.Errorf("catalog: product needs a name and a positive price")
	}
	product.Active = true
	return s.Repo.Create(ctx, product)
}

func (s *DefaultCatalogService) Update(ctx context.Context, product *models.Product) error {
	return s.Repo.Update(ctx, product)
}

func (s *DefaultCatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
