package user

import (
	"context"

	"github.com/doramashorts/backend/internal/shared/authorization"
)

// Repository defines the interface for user data operations
type Repository interface {
	// Create returns ErrEmailTaken when the address is already registered.
	Create(ctx context.Context, user *User) error

	// GetByID returns nil, nil when the user does not exist.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail returns nil, nil when no user has the address.
	GetByEmail(ctx context.Context, email string) (*User, error)

	UpdateRole(ctx context.Context, id uint, role authorization.UserRole) error
}
