package handlers

import (
	"context"

	entUsecases "github.com/doramashorts/backend/internal/application/entitlement/usecases"
	purchaseUsecases "github.com/doramashorts/backend/internal/application/purchase/usecases"
	"github.com/doramashorts/backend/internal/application/video/usecases"
)

// Use case interfaces for VideoHandler

type listVideosUseCase interface {
	Execute(ctx context.Context, query usecases.ListVideosQuery) (*usecases.ListVideosResult, error)
}

type getVideoUseCase interface {
	Execute(ctx context.Context, query usecases.GetVideoQuery) (*usecases.VideoDTO, error)
}

type checkPlaybackUseCase interface {
	Execute(ctx context.Context, cmd entUsecases.CheckPlaybackCommand) (*entUsecases.PlaybackResult, error)
}

type initiatePurchaseUseCase interface {
	Execute(ctx context.Context, cmd purchaseUsecases.InitiatePurchaseCommand) (*purchaseUsecases.InitiatePurchaseResult, error)
}
