package usecases

import (
	"time"

	"github.com/doramashorts/backend/internal/domain/purchase"
	"github.com/doramashorts/backend/internal/shared/money"
)

type PurchaseDTO struct {
	SID             string     `json:"id"`
	VideoSID        string     `json:"video_id,omitempty"`
	Status          string     `json:"status"`
	AmountCents     int64      `json:"amount_cents"`
	AmountFormatted string     `json:"amount_formatted"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toPurchaseDTO(p *purchase.Purchase, videoSID string) *PurchaseDTO {
	if p == nil {
		return nil
	}
	return &PurchaseDTO{
		SID:             p.SID(),
		VideoSID:        videoSID,
		Status:          p.Status().String(),
		AmountCents:     p.AmountCents(),
		AmountFormatted: money.FormatBRL(p.AmountCents()),
		PaidAt:          p.PaidAt(),
		CreatedAt:       p.CreatedAt(),
	}
}
