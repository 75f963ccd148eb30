// Package video models catalog items, the objects being gated.
package video

import (
	"fmt"
	"strings"
	"time"

	"github.com/doramashorts/backend/internal/shared/id"
)

// Video is a catalog entry. A zero price places it under the flat-rate
// subscription, a positive price makes it a per-video purchase.
type Video struct {
	id           uint
	sid          string
	title        string
	description  string
	thumbnailURL string
	videoURL     string
	tags         []string
	isActive     bool
	priceCents   int64
	createdBy    uint
	createdAt    time.Time
	updatedAt    time.Time
}

type CreateParams struct {
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Tags         []string
	PriceCents   int64
	CreatedBy    uint
}

func NewVideo(p CreateParams, now time.Time) (*Video, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(p.VideoURL) == "" {
		return nil, ErrVideoURLRequired
	}
	if p.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	sid, err := id.NewVideoID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate video SID: %w", err)
	}

	return &Video{
		sid:          sid,
		title:        title,
		description:  p.Description,
		thumbnailURL: p.ThumbnailURL,
		videoURL:     p.VideoURL,
		tags:         normalizeTags(p.Tags),
		isActive:     true,
		priceCents:   p.PriceCents,
		createdBy:    p.CreatedBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type ReconstructParams struct {
	ID           uint
	SID          string
	Title        string
	Description  string
	ThumbnailURL string
	VideoURL     string
	Tags         []string
	IsActive     bool
	PriceCents   int64
	CreatedBy    uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ReconstructVideo(p ReconstructParams) (*Video, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("video ID cannot be zero")
	}
	return &Video{
		id:           p.ID,
		sid:          p.SID,
		title:        p.Title,
		description:  p.Description,
		thumbnailURL: p.ThumbnailURL,
		videoURL:     p.VideoURL,
		tags:         p.Tags,
		isActive:     p.IsActive,
		priceCents:   p.PriceCents,
		createdBy:    p.CreatedBy,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// IsFlatRate reports whether the video is unlocked by the monthly subscription.
func (v *Video) IsFlatRate() bool {
	return v.priceCents == 0
}

func (v *Video) Deactivate(now time.Time) {
	if !v.isActive {
		return
	}
	v.isActive = false
	v.updatedAt = now
}

func (v *Video) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("video ID is already set")
	}
	v.id = id
	return nil
}

func (v *Video) ID() uint             { return v.id }
func (v *Video) SID() string          { return v.sid }
func (v *Video) Title() string        { return v.title }
func (v *Video) Description() string  { return v.description }
func (v *Video) ThumbnailURL() string { return v.thumbnailURL }
func (v *Video) VideoURL() string     { return v.videoURL }
func (v *Video) Tags() []string       { return v.tags }
func (v *Video) IsActive() bool       { return v.isActive }
func (v *Video) PriceCents() int64    { return v.priceCents }
func (v *Video) CreatedBy() uint      { return v.createdBy }
func (v *Video) CreatedAt() time.Time { return v.createdAt }
func (v *Video) UpdatedAt() time.Time { return v.updatedAt }
