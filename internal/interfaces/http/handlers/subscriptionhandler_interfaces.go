package handlers

import (
	"context"

	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	"github.com/doramashorts/backend/internal/application/subscription/usecases"
)

// Use case interfaces for SubscriptionHandler

type getPlanUseCase interface {
	Execute(userEmail string) *subdto.PlanDTO
}

type initiateSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiateSubscriptionCommand) (*usecases.InitiateSubscriptionResult, error)
}

type getMySubscriptionUseCase interface {
	Execute(ctx context.Context, userID uint) (*subdto.SubscriptionDTO, error)
}
