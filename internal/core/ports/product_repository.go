package ports

import (
	"context"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	// UpdateByID applies the non-nil fields of update and returns the updated
	// document. Returns domain.ErrProductNotFound for an unknown id.
	UpdateByID(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error)
	// DeleteByID returns domain.ErrProductNotFound for an unknown id.
	DeleteByID(ctx context.Context, id string) error
}
