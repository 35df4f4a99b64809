package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is a single catalog entry. The JSON field names match the wire
// format the frontend already consumes (inStock stays camelCase).
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	InStock  bool    `json:"inStock"`
}

// ProductUpdate is a partial update. Nil fields are left untouched.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Category *string
	InStock  *bool
}

// Empty reports whether the update carries no fields at all.
func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Price == nil && u.Category == nil && u.InStock == nil
}
