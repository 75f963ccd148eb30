// Package user models accounts. Roles are an authorization concern and never
// affect content entitlement.
package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/doramashorts/backend/internal/domain/user/valueobjects"
	"github.com/doramashorts/backend/internal/shared/authorization"
)

// User represents the user aggregate root
type User struct {
	id           uint
	email        *vo.Email
	name         string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email *vo.Email, name, passwordHash string, now time.Time) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.SplitN(email.String(), "@", 2)[0]
	}

	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         authorization.RoleUser,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type ReconstructParams struct {
	ID           uint
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructUser(p ReconstructParams) (*User, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(p.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid stored email: %w", err)
	}

	return &User{
		id:           p.ID,
		email:        email,
		name:         p.Name,
		passwordHash: p.PasswordHash,
		role:         authorization.ParseUserRole(p.Role),
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

// SetRole returns true when the role changed.
func (u *User) SetRole(role authorization.UserRole, now time.Time) bool {
	if u.role == role {
		return false
	}
	u.role = role
	u.updatedAt = now
	return true
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	u.id = id
	return nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() *vo.Email             { return u.email }
func (u *User) Name() string                 { return u.name }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsAdmin() bool                { return u.role.IsAdmin() }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }
