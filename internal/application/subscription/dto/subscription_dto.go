package dto

import (
	"time"

	"github.com/doramashorts/backend/internal/domain/subscription"
)

// SubscriptionDTO is the wire view of a subscription. Status is the effective
// status at the time of conversion, StoredStatus the persisted one.
type SubscriptionDTO struct {
	SID              string     `json:"id"`
	UserID           uint       `json:"user_id"`
	Status           string     `json:"status"`
	StoredStatus     string     `json:"stored_status"`
	StartsAt         *time.Time `json:"starts_at"`
	ExpiresAt        *time.Time `json:"expires_at"`
	WhatsAppNumber   string     `json:"whatsapp_number,omitempty"`
	PaymentProofURL  string     `json:"payment_proof_url,omitempty"`
	ApprovedBy       *uint      `json:"approved_by,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	ActivationSource string     `json:"activation_source,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func ToSubscriptionDTO(sub *subscription.Subscription, now time.Time) *SubscriptionDTO {
	if sub == nil {
		return nil
	}
	return &SubscriptionDTO{
		SID:              sub.SID(),
		UserID:           sub.UserID(),
		Status:           sub.EffectiveStatus(now).String(),
		StoredStatus:     sub.Status().String(),
		StartsAt:         sub.StartsAt(),
		ExpiresAt:        sub.ExpiresAt(),
		WhatsAppNumber:   sub.WhatsAppNumber(),
		PaymentProofURL:  sub.PaymentProofURL(),
		ApprovedBy:       sub.ApprovedBy(),
		ApprovedAt:       sub.ApprovedAt(),
		ActivationSource: sub.ActivationSource().String(),
		CreatedAt:        sub.CreatedAt(),
		UpdatedAt:        sub.UpdatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*subscription.Subscription, now time.Time) []*SubscriptionDTO {
	out := make([]*SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		out = append(out, ToSubscriptionDTO(s, now))
	}
	return out
}

// PlanDTO describes the monthly plan and how to pay for it manually.
type PlanDTO struct {
	PriceCents      int64  `json:"price_cents"`
	PriceFormatted  string `json:"price_formatted"`
	Currency        string `json:"currency"`
	PeriodDays      int    `json:"period_days"`
	PixKey          string `json:"pix_key"`
	WhatsAppContact string `json:"whatsapp_contact"`
	WhatsAppLink    string `json:"whatsapp_link"`
}
