package purchase

import (
	"fmt"
	"time"

	vo "github.com/doramashorts/backend/internal/domain/purchase/valueobjects"
	"github.com/doramashorts/backend/internal/shared/id"
)

// Purchase is a one-time payment that unlocks a single video.
type Purchase struct {
	id          uint
	sid         string
	userID      uint
	videoID     uint
	status      vo.PurchaseStatus
	amountCents int64
	paidAt      *time.Time
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPurchase(userID, videoID uint, amountCents int64, now time.Time) (*Purchase, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if videoID == 0 {
		return nil, fmt.Errorf("video ID is required")
	}
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	sid, err := id.NewPurchaseID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate purchase SID: %w", err)
	}

	return &Purchase{
		sid:         sid,
		userID:      userID,
		videoID:     videoID,
		status:      vo.PurchaseStatusPending,
		amountCents: amountCents,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

type ReconstructParams struct {
	ID          uint
	SID         string
	UserID      uint
	VideoID     uint
	Status      vo.PurchaseStatus
	AmountCents int64
	PaidAt      *time.Time
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func ReconstructPurchase(p ReconstructParams) (*Purchase, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("purchase ID cannot be zero")
	}
	if p.UserID == 0 || p.VideoID == 0 {
		return nil, fmt.Errorf("user ID and video ID are required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid purchase status: %s", p.Status)
	}

	return &Purchase{
		id:          p.ID,
		sid:         p.SID,
		userID:      p.UserID,
		videoID:     p.VideoID,
		status:      p.Status,
		amountCents: p.AmountCents,
		paidAt:      p.PaidAt,
		version:     p.Version,
		createdAt:   p.CreatedAt,
		updatedAt:   p.UpdatedAt,
	}, nil
}

// MarkAsPaid is a no-op on an already paid purchase.
func (p *Purchase) MarkAsPaid(now time.Time) error {
	if p.status == vo.PurchaseStatusPaid {
		return nil
	}

	if p.status != vo.PurchaseStatusPending {
		return fmt.Errorf("%w: cannot mark purchase as paid with status %s", ErrPurchaseFinal, p.status)
	}

	p.status = vo.PurchaseStatusPaid
	p.paidAt = &now
	p.updatedAt = now
	p.version++

	return nil
}

func (p *Purchase) MarkAsFailed(now time.Time) error {
	if p.status.IsFinal() {
		return fmt.Errorf("%w: cannot mark purchase as failed with status %s", ErrPurchaseFinal, p.status)
	}

	p.status = vo.PurchaseStatusFailed
	p.updatedAt = now
	p.version++

	return nil
}

// PaidKey is the value of the unique paid_key column: "<user>:<video>" once
// paid, nil otherwise.
func (p *Purchase) PaidKey() *string {
	if !p.status.IsPaid() {
		return nil
	}
	key := PaidKeyFor(p.userID, p.videoID)
	return &key
}

func PaidKeyFor(userID, videoID uint) string {
	return fmt.Sprintf("%d:%d", userID, videoID)
}

// SetID sets the purchase ID (only for persistence layer use)
func (p *Purchase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("purchase ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("purchase ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Purchase) ID() uint {
	return p.id
}

func (p *Purchase) SID() string {
	return p.sid
}

func (p *Purchase) UserID() uint {
	return p.userID
}

func (p *Purchase) VideoID() uint {
	return p.videoID
}

func (p *Purchase) Status() vo.PurchaseStatus {
	return p.status
}

func (p *Purchase) AmountCents() int64 {
	return p.amountCents
}

func (p *Purchase) PaidAt() *time.Time {
	return p.paidAt
}

func (p *Purchase) Version() int {
	return p.version
}

func (p *Purchase) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Purchase) UpdatedAt() time.Time {
	return p.updatedAt
}
