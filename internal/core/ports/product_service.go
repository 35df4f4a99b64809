package ports

import (
	"context"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
