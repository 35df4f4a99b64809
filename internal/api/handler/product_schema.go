package handler

// updateProductRequest is a partial update; absent fields are left untouched.
type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	InStock  *bool    `json:"inStock"`
}

type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
}

type deleteProductResponse struct {
	Success bool `json:"success"`
}
