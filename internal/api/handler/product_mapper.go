package handler

import "github.com/productcatalog/catalog-api/internal/core/domain"

func toUpdate(req updateProductRequest) domain.ProductUpdate {
	return domain.ProductUpdate{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		InStock:  req.InStock,
	}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		InStock:  p.InStock,
	}
}

func toProductListResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}
