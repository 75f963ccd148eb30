package usecases

import (
	"time"

	"github.com/doramashorts/backend/internal/domain/entitlement"
	"github.com/doramashorts/backend/internal/domain/video"
	"github.com/doramashorts/backend/internal/shared/money"
)

// VideoDTO is the catalog view of a video. VideoURL is never exposed here;
// playback goes through the access gate.
type VideoDTO struct {
	SID             string                 `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	DescriptionHTML string                 `json:"description_html,omitempty"`
	ThumbnailURL    string                 `json:"thumbnail_url,omitempty"`
	Tags            []string               `json:"tags"`
	PriceCents      int64                  `json:"price_cents"`
	PriceFormatted  string                 `json:"price_formatted,omitempty"`
	FlatRate        bool                   `json:"flat_rate"`
	IsActive        bool                   `json:"is_active"`
	HasAccess       bool                   `json:"has_access"`
	LockReason      entitlement.LockReason `json:"lock_reason,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
}

func toVideoDTO(v *video.Video, currency string) *VideoDTO {
	out := &VideoDTO{
		SID:          v.SID(),
		Title:        v.Title(),
		ThumbnailURL: v.ThumbnailURL(),
		Tags:         v.Tags(),
		PriceCents:   v.PriceCents(),
		FlatRate:     v.IsFlatRate(),
		IsActive:     v.IsActive(),
		CreatedAt:    v.CreatedAt(),
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if !v.IsFlatRate() {
		out.PriceFormatted = money.Format(v.PriceCents(), currency)
	}
	return out
}

// applyAccess fills HasAccess and LockReason from a resolution.
func (d *VideoDTO) applyAccess(authenticated bool, result entitlement.Result) {
	d.HasAccess = result.Entitled()
	d.LockReason = entitlement.ReasonFor(authenticated, result, d.FlatRate)
}
