package repository

import (
	"context"

	"github.com/sangkips/kasir/internal/domain/entity"
	"github.com/sangkips/kasir/pkg/pagination"
)

// ProductRepository reads the product catalog
type ProductRepository interface {
	List(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, *pagination.Pagination, error)
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// CategoryRepository reads product categories
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
