package handlers

import (
	"context"

	"github.com/doramashorts/backend/internal/application/entitlement/usecases"
)

// Use case interfaces for EntitlementHandler

type getEntitlementUseCase interface {
	Execute(ctx context.Context, userID uint) (*usecases.EntitlementDTO, error)
}
