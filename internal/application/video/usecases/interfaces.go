package usecases

import (
	"context"

	entusecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
)

// EntitlementLoader reads a user's records for access flags.
type EntitlementLoader interface {
	Load(ctx context.Context, userID uint) (*entusecases.Snapshot, error)
}

// DescriptionRenderer turns stored markdown into safe HTML.
type DescriptionRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}
