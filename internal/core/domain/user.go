package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleConsumer = "consumer"
)

var (
	ErrMissingFields = errors.New("username and password are required")
	ErrInvalidRole   = errors.New("invalid role")
	ErrUserExists    = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")

	// ErrLoginFailed covers both "no such user" and "wrong password" so
	// clients cannot probe which usernames exist.
	ErrLoginFailed = errors.New("login failed")

	ErrMissingToken = errors.New("access token required")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrForbidden    = errors.New("access forbidden")
)

// ValidRole reports whether role is one of the accepted role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleConsumer
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
