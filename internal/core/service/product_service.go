package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/productcatalog/catalog-api/internal/core/domain"
	"github.com/productcatalog/catalog-api/internal/core/ports"
)

// ListCache abstracts the product-list cache (Redis).
type ListCache interface {
	// Get returns the cached list and whether the cache was warm.
	Get(ctx context.Context) ([]domain.Product, bool, error)
	Set(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}

type ProductService struct {
	repo  ports.ProductRepository
	cache ListCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ListCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

// List returns the full catalog, served from cache when warm. Cache failures
// are non-fatal: the read falls through to the repository.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	products, warm, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("product cache read failed, falling back to store")
	} else if warm {
		return products, nil
	}

	products, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, products); err != nil {
		s.log.Warn().Err(err).Msg("failed to warm product cache")
	}

	return products, nil
}

// Update applies a partial update and invalidates the list cache.
func (s *ProductService) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.log.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product and invalidates the list cache.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate product cache")
	}
}
