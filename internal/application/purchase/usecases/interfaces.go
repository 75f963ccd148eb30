package usecases

import (
	"context"

	"github.com/doramashorts/backend/internal/domain/entitlement"
)

type EntitlementPublisher interface {
	PublishEntitlementChanged(ctx context.Context, event entitlement.ChangedEvent) error
}
