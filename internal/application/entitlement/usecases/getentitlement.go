package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/shared/biztime"
	apperrors "github.com/doramashorts/backend/internal/shared/errors"
	"github.com/doramashorts/backend/internal/shared/logger"
)

// EntitlementDTO summarises subscription access for the caller. Per-video
// purchases are reported through the catalog's has_access flag.
type EntitlementDTO struct {
	Entitled        bool             `json:"entitled"`
	Kind            entitlement.Kind `json:"kind"`
	SubscriptionSID string           `json:"subscription_id,omitempty"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
	PaidVideoCount  int              `json:"paid_video_count"`
}

type GetEntitlementUseCase struct {
	loader *Loader
	now    func() time.Time
	logger logger.Interface
}

func NewGetEntitlementUseCase(loader *Loader, logger logger.Interface) *GetEntitlementUseCase {
	return &GetEntitlementUseCase{loader: loader, now: biztime.NowUTC, logger: logger}
}

func (uc *GetEntitlementUseCase) Execute(ctx context.Context, userID uint) (*EntitlementDTO, error) {
	if userID == 0 {
		return nil, apperrors.NewUnauthorizedError("login required")
	}

	snapshot, err := uc.loader.Load(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load entitlement", "user_id", userID, "error", err)
		return nil, apperrors.NewServiceUnavailableError("entitlement store unavailable")
	}

	out := &EntitlementDTO{Kind: entitlement.KindNone}
	for _, p := range snapshot.Purchases {
		if p.Status().IsPaid() {
			out.PaidVideoCount++
		}
	}

	result := snapshot.For(0, uc.now())
	if result.Kind == entitlement.KindSubscriptionActive {
		expiresAt := result.ExpiresAt
		out.Entitled = true
		out.Kind = result.Kind
		out.SubscriptionSID = result.SubscriptionSID
		out.ExpiresAt = &expiresAt
	}
	return out, nil
}
