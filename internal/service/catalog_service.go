package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Fakedev-cmd/botforge-services.it/internal/cache"
	"github.com/Fakedev-cmd/botforge-services.it/internal/domain"
	"github.com/Fakedev-cmd/botforge-services.it/internal/repository"
	"github.com/Fakedev-cmd/botforge-services.it/pkg/apperrors"
)

// CatalogService serves the product catalog through the Redis cache.
type CatalogService struct {
	products repository.ProductRepository
	catalog  *cache.CatalogCache
}

// NewCatalogService constructs the service.
func NewCatalogService(products repository.ProductRepository, catalog *cache.CatalogCache) *CatalogService {
	return &CatalogService{products: products, catalog: catalog}
}

// ProductInput describes a catalog write.
type ProductInput struct {
	Name        string
	Description string
	Price       string
	Features    []string
	Category    string
	Status      domain.ProductStatus
}

// ListActive returns the storefront listing, cache first.
func (s *CatalogService) ListActive(ctx context.Context) ([]domain.Product, error) {
	if products, ok := s.catalog.GetActive(ctx); ok {
		return products, nil
	}
	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.catalog.SetActive(ctx, products)
	return products, nil
}

// GetProduct fetches one product regardless of status.
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Product")
		}
		return nil, err
	}
	return product, nil
}

// CreateProduct adds a catalog entry and drops the cached listing.
func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = domain.ProductStatusActive
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Features:    input.Features,
		Category:    input.Category,
		Status:      status,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.catalog.Invalidate(ctx)
	return product, nil
}

// UpdateProduct rewrites a catalog entry and drops the cached listing.
func (s *CatalogService) UpdateProduct(ctx context.Context, id int64, input ProductInput) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.Description = input.Description
	product.Price = price
	product.Features = input.Features
	product.Category = input.Category
	if input.Status != "" {
		product.Status = input.Status
	}

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Product")
		}
		return nil, err
	}
	s.catalog.Invalidate(ctx)
	return product, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, apperrors.NewValidationError("Invalid input", []apperrors.FieldError{
			{Field: "price", Message: "must be a non-negative decimal"},
		})
	}
	return price, nil
}
