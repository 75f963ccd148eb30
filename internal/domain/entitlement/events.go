package entitlement

import "time"

// ChangeReason names the transition that altered a user's entitlement.
type ChangeReason string

const (
	ChangeSubscriptionActivated ChangeReason = "subscription_activated"
	ChangeSubscriptionRejected  ChangeReason = "subscription_rejected"
	ChangeSubscriptionExpired   ChangeReason = "subscription_expired"
	ChangePurchasePaid          ChangeReason = "purchase_paid"
)

// ChangedEvent tells listeners to refetch a user's entitlement. It carries no
// state of its own.
type ChangedEvent struct {
	UserID     uint         `json:"user_id"`
	Reason     ChangeReason `json:"reason"`
	ResourceID string       `json:"resource_id,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
