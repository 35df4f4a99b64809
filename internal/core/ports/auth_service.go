package ports

import (
	"context"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login returns the signed bearer token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
