package usecases

import (
	"context"
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
)

// TransactionManager runs fn inside a store transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// InFlightGuard is a short-lived per-key lock. Acquire reports false when the
// key is already held.
type InFlightGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// EntitlementPublisher fans out entitlement changes to live listeners.
type EntitlementPublisher interface {
	PublishEntitlementChanged(ctx context.Context, event entitlement.ChangedEvent) error
}

// PendingSubscriptionNotice is sent to admins when a manual request arrives.
type PendingSubscriptionNotice struct {
	SubscriptionSID string
	UserEmail       string
	WhatsAppNumber  string
	PaymentProofURL string
	CreatedAt       time.Time
}

type AdminNotifier interface {
	NotifyPendingSubscription(ctx context.Context, notice PendingSubscriptionNotice) error
}

// UserEmailProvider resolves user IDs to addresses for notifications.
type UserEmailProvider interface {
	GetEmail(ctx context.Context, userID uint) (string, error)
}

// TextSanitizer strips markup from user-supplied evidence.
type TextSanitizer interface {
	PlainText(input string) string
}

// Config is the lifecycle tuning shared by the use cases.
type Config struct {
	PeriodDays      int
	ApprovalDays    int
	InitiateLockTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.PeriodDays <= 0 {
		c.PeriodDays = 30
	}
	if c.ApprovalDays <= 0 {
		c.ApprovalDays = 30
	}
	if c.InitiateLockTTL <= 0 {
		c.InitiateLockTTL = 10 * time.Second
	}
	return c
}
