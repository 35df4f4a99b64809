package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

type stubProductRepo struct {
	products  []domain.Product
	findCalls int
	updated   *domain.Product
	updateErr error
	deleteErr error
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	r.findCalls++
	return r.products, nil
}

func (r *stubProductRepo) UpdateByID(_ context.Context, _ string, _ domain.ProductUpdate) (*domain.Product, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	return r.updated, nil
}

func (r *stubProductRepo) DeleteByID(_ context.Context, _ string) error {
	return r.deleteErr
}

type stubCache struct {
	products    []domain.Product
	warm        bool
	getErr      error
	sets        int
	invalidates int
}

func (c *stubCache) Get(_ context.Context) ([]domain.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.products, c.warm, nil
}

func (c *stubCache) Set(_ context.Context, products []domain.Product) error {
	c.sets++
	c.products = products
	c.warm = true
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.invalidates++
	c.warm = false
	return nil
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Laptop 1", Price: 999.99, Category: "Electronics", InStock: true},
		{ID: "p2", Name: "Novel 2", Price: 12.5, Category: "Books", InStock: false},
	}
}

func TestProductService_List_CacheMiss(t *testing.T) {
	repo := &stubProductRepo{products: sampleProducts()}
	cache := &stubCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected one repo read, got %d", repo.findCalls)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be warmed, sets=%d", cache.sets)
	}
}

func TestProductService_List_CacheHit(t *testing.T) {
	repo := &stubProductRepo{products: sampleProducts()}
	cache := &stubCache{products: sampleProducts(), warm: true}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.findCalls != 0 {
		t.Fatalf("expected cache hit to skip the repo, got %d reads", repo.findCalls)
	}
}

func TestProductService_List_CacheFailureFallsThrough(t *testing.T) {
	repo := &stubProductRepo{products: sampleProducts()}
	cache := &stubCache{getErr: errors.New("redis down")}
	svc := NewProductService(repo, cache, zerolog.Nop())

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 || repo.findCalls != 1 {
		t.Fatalf("expected fallback repo read, products=%d calls=%d", len(products), repo.findCalls)
	}
}

func TestProductService_Update_InvalidatesCache(t *testing.T) {
	name := "Renamed"
	repo := &stubProductRepo{updated: &domain.Product{ID: "p1", Name: name}}
	cache := &stubCache{warm: true}
	svc := NewProductService(repo, cache, zerolog.Nop())

	product, err := svc.Update(context.Background(), "p1", domain.ProductUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if product.Name != "Renamed" {
		t.Fatalf("unexpected product: %+v", product)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidates)
	}
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := &stubProductRepo{updateErr: domain.ErrProductNotFound}
	cache := &stubCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", domain.ProductUpdate{}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if cache.invalidates != 0 {
		t.Fatalf("cache should not be invalidated on failure")
	}
}

func TestProductService_Delete_InvalidatesCache(t *testing.T) {
	repo := &stubProductRepo{}
	cache := &stubCache{warm: true}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidates)
	}
}
