package usecases

import (
	"github.com/doramashorts/backend/internal/shared/authorization"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// IssuedToken is a signed access token.
type IssuedToken struct {
	AccessToken string
	ExpiresIn   int64
}

type TokenIssuer interface {
	Issue(userID uint, email string, role authorization.UserRole) (*IssuedToken, error)
}
