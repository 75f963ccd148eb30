package subscription

import (
	"fmt"
	"time"

	vo "github.com/doramashorts/backend/internal/domain/subscription/valueobjects"
	"github.com/doramashorts/backend/internal/shared/biztime"
	"github.com/doramashorts/backend/internal/shared/id"
)

// Evidence is the manual-flow proof a user attaches to a payment request.
type Evidence struct {
	WhatsAppNumber  string
	PaymentProofURL string
}

func (e Evidence) IsEmpty() bool {
	return e.WhatsAppNumber == "" && e.PaymentProofURL == ""
}

// Subscription represents the subscription aggregate root
type Subscription struct {
	id               uint
	sid              string
	userID           uint
	status           vo.SubscriptionStatus
	startsAt         *time.Time
	expiresAt        *time.Time
	whatsAppNumber   string
	paymentProofURL  string
	approvedBy       *uint
	approvedAt       *time.Time
	activationSource vo.ActivationSource
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSubscription creates a pending payment request for userID.
func NewSubscription(userID uint, evidence Evidence, now time.Time) (*Subscription, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	sid, err := id.NewSubscriptionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription SID: %w", err)
	}

	return &Subscription{
		sid:             sid,
		userID:          userID,
		status:          vo.StatusPending,
		whatsAppNumber:  evidence.WhatsAppNumber,
		paymentProofURL: evidence.PaymentProofURL,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID               uint
	SID              string
	UserID           uint
	Status           vo.SubscriptionStatus
	StartsAt         *time.Time
	ExpiresAt        *time.Time
	WhatsAppNumber   string
	PaymentProofURL  string
	ApprovedBy       *uint
	ApprovedAt       *time.Time
	ActivationSource vo.ActivationSource
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(p ReconstructParams) (*Subscription, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if p.SID == "" {
		return nil, fmt.Errorf("subscription SID is required")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid subscription status: %s", p.Status)
	}
	if !p.ActivationSource.IsValid() {
		return nil, fmt.Errorf("invalid activation source: %s", p.ActivationSource)
	}

	return &Subscription{
		id:               p.ID,
		sid:              p.SID,
		userID:           p.UserID,
		status:           p.Status,
		startsAt:         p.StartsAt,
		expiresAt:        p.ExpiresAt,
		whatsAppNumber:   p.WhatsAppNumber,
		paymentProofURL:  p.PaymentProofURL,
		approvedBy:       p.ApprovedBy,
		approvedAt:       p.ApprovedAt,
		activationSource: p.ActivationSource,
		version:          p.Version,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (s *Subscription) ID() uint                               { return s.id }
func (s *Subscription) SID() string                            { return s.sid }
func (s *Subscription) UserID() uint                           { return s.userID }
func (s *Subscription) Status() vo.SubscriptionStatus          { return s.status }
func (s *Subscription) StartsAt() *time.Time                   { return s.startsAt }
func (s *Subscription) ExpiresAt() *time.Time                  { return s.expiresAt }
func (s *Subscription) WhatsAppNumber() string                 { return s.whatsAppNumber }
func (s *Subscription) PaymentProofURL() string                { return s.paymentProofURL }
func (s *Subscription) ApprovedBy() *uint                      { return s.approvedBy }
func (s *Subscription) ApprovedAt() *time.Time                 { return s.approvedAt }
func (s *Subscription) ActivationSource() vo.ActivationSource { return s.activationSource }
func (s *Subscription) Version() int                           { return s.version }
func (s *Subscription) CreatedAt() time.Time                   { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time                   { return s.updatedAt }

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// IsNonTerminal reports whether the stored status is pending or active.
func (s *Subscription) IsNonTerminal() bool {
	return !s.status.IsTerminal()
}

// NonTerminalKey is the value of the per-user uniqueness column: the user ID
// while the record is pending or active, nil otherwise.
func (s *Subscription) NonTerminalKey() *uint {
	if !s.IsNonTerminal() {
		return nil
	}
	userID := s.userID
	return &userID
}

// IsLapsed reports an active record whose expiry has passed.
func (s *Subscription) IsLapsed(now time.Time) bool {
	return s.status == vo.StatusActive && (s.expiresAt == nil || !now.Before(*s.expiresAt))
}

// GrantsAccess reports whether the record entitles its owner at now.
func (s *Subscription) GrantsAccess(now time.Time) bool {
	return s.status == vo.StatusActive && !s.IsLapsed(now)
}

// EffectiveStatus applies lazy expiry to the stored status.
func (s *Subscription) EffectiveStatus(now time.Time) vo.SubscriptionStatus {
	if s.IsLapsed(now) {
		return vo.StatusExpired
	}
	return s.status
}

// MergeEvidence fills in evidence on a pending record. Non-empty fields
// replace stored ones. Returns true when anything changed.
func (s *Subscription) MergeEvidence(e Evidence, now time.Time) (bool, error) {
	if s.status != vo.StatusPending {
		return false, ErrInvalidTransition(s.status.String(), "pending")
	}

	changed := false
	if e.WhatsAppNumber != "" && e.WhatsAppNumber != s.whatsAppNumber {
		s.whatsAppNumber = e.WhatsAppNumber
		changed = true
	}
	if e.PaymentProofURL != "" && e.PaymentProofURL != s.paymentProofURL {
		s.paymentProofURL = e.PaymentProofURL
		changed = true
	}
	if changed {
		s.updatedAt = now
		s.version++
	}
	return changed, nil
}

// Approve applies the manual pending -> active transition.
func (s *Subscription) Approve(adminID uint, periodDays int, now time.Time) error {
	if adminID == 0 {
		return fmt.Errorf("approver ID is required")
	}
	if err := s.activate(periodDays, now, vo.ActivationSourceAdmin); err != nil {
		return err
	}
	approvedAt := now
	s.approvedBy = &adminID
	s.approvedAt = &approvedAt
	return nil
}

// ActivateFromCheckout applies the automated pending -> active transition.
func (s *Subscription) ActivateFromCheckout(periodDays int, now time.Time) error {
	return s.activate(periodDays, now, vo.ActivationSourceCheckout)
}

func (s *Subscription) activate(periodDays int, now time.Time, source vo.ActivationSource) error {
	if periodDays <= 0 {
		return ErrInvalidPeriod
	}
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return ErrInvalidTransition(s.status.String(), vo.StatusActive.String())
	}

	startsAt := now
	expiresAt := biztime.AddDays(now, periodDays)
	s.status = vo.StatusActive
	s.startsAt = &startsAt
	s.expiresAt = &expiresAt
	s.activationSource = source
	s.updatedAt = now
	s.version++
	return nil
}

// Reject applies pending -> cancelled.
func (s *Subscription) Reject(now time.Time) error {
	if !s.status.CanTransitionTo(vo.StatusCancelled) {
		return ErrInvalidTransition(s.status.String(), vo.StatusCancelled.String())
	}
	s.status = vo.StatusCancelled
	s.updatedAt = now
	s.version++
	return nil
}

// MarkAsExpired reconciles a lapsed active record.
func (s *Subscription) MarkAsExpired(now time.Time) error {
	if s.status == vo.StatusExpired {
		return nil
	}
	if !s.IsLapsed(now) {
		return ErrInvalidTransition(s.status.String(), vo.StatusExpired.String())
	}
	s.status = vo.StatusExpired
	s.updatedAt = now
	s.version++
	return nil
}
