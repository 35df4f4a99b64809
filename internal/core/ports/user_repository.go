package ports

import (
	"context"

	"github.com/productcatalog/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// The auth contract never updates or deletes user records.
type UserRepository interface {
	// FindByUsername returns domain.ErrUserNotFound when no record matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
