package service

import (
	"context"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/pkg/pagination"
)

// CatalogService reads products and categories for the cart screen
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo, categoryRepo: categoryRepo}
}

// ListProducts lists products matching filter
func (s *CatalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*pagination.PaginatedResult[entity.Product], error) {
	products, page, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(products, page), nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

// ListCategories lists every product category
func (s *CatalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	return categories, nil
}

// AddToCart looks the product up on the server and adds it to cart, so the
// price snapshot is the server's current price
func (s *CatalogService) AddToCart(ctx context.Context, cart *CartStore, productID string, quantity int) error {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	return cart.AddItem(*product, quantity)
}
