package repository

import (
	"context"
	"net/url"

	"github.com/sangkips/kasir/internal/domain/entity"
	domainRepo "github.com/sangkips/kasir/internal/domain/repository"
	"github.com/sangkips/kasir/internal/infrastructure/api"
	"github.com/sangkips/kasir/pkg/pagination"
)

type productRepository struct {
	client *api.Client
}

// NewProductRepository creates a new product repository
func NewProductRepository(client *api.Client) domainRepo.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, *pagination.Pagination, error) {
	q := url.Values{}
	setIfPresent(q, "category_id", filter.CategoryID)
	setIfPresent(q, "search", filter.Search)
	PageScope(q, filter.Page, filter.Limit)

	env, err := r.client.Get(ctx, "/products", q)
	if err != nil {
		return nil, nil, err
	}
	return decodeList[entity.Product](env)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	escaped, err := requireID(id)
	if err != nil {
		return nil, err
	}
	env, err := r.client.Get(ctx, "/products/"+escaped, nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Product](env)
}

type categoryRepository struct {
	client *api.Client
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(client *api.Client) domainRepo.CategoryRepository {
	return &categoryRepository{client: client}
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	env, err := r.client.Get(ctx, "/categories", nil)
	if err != nil {
		return nil, err
	}
	categories, _, err := decodeList[entity.Category](env)
	return categories, err
}
