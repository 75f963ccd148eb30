package admin

import (
	"context"

	subdto "github.com/doramashorts/backend/internal/application/subscription/dto"
	subUsecases "github.com/doramashorts/backend/internal/application/subscription/usecases"
	videoUsecases "github.com/doramashorts/backend/internal/application/video/usecases"
)

type listPendingSubscriptionsUseCase interface {
	Execute(ctx context.Context) ([]*subdto.SubscriptionDTO, error)
}

// reviewSubscriptionUseCase is satisfied by both approve and reject.
type reviewSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd subUsecases.ReviewSubscriptionCommand) (*subUsecases.ReviewResult, error)
}

type createVideoUseCase interface {
	Execute(ctx context.Context, cmd videoUsecases.CreateVideoCommand) (*videoUsecases.VideoDTO, error)
}

type deleteVideoUseCase interface {
	Execute(ctx context.Context, sid string) error
}
