package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/shared/constants"
)

// SubscriptionModel is the stored form of a subscription record.
// NonTerminalKey holds the user ID while the record is pending or active and
// NULL otherwise, so the unique index allows one live record per user.
type SubscriptionModel struct {
	ID               uint       `gorm:"primarykey"`
	SID              string     `gorm:"uniqueIndex:uk_subscriptions_sid;not null;size:50"`
	UserID           uint       `gorm:"not null;index:idx_subscriptions_user_created,priority:1"`
	NonTerminalKey   *uint      `gorm:"uniqueIndex:uk_subscriptions_non_terminal"`
	Status           string     `gorm:"not null;size:20;index:idx_subscriptions_status_expires,priority:1"`
	StartsAt         *time.Time `gorm:"column:starts_at"`
	ExpiresAt        *time.Time `gorm:"index:idx_subscriptions_status_expires,priority:2"`
	WhatsAppNumber   string     `gorm:"column:whatsapp_number;size:32"`
	PaymentProofURL  string     `gorm:"size:1024"`
	ApprovedBy       *uint      `gorm:"column:approved_by"`
	ApprovedAt       *time.Time `gorm:"column:approved_at"`
	ActivationSource string     `gorm:"size:20"`
	Version          int        `gorm:"not null;default:1"`
	CreatedAt        time.Time  `gorm:"not null;index:idx_subscriptions_user_created,priority:2"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.Version == 0 {
		s.Version = 1
	}
	return nil
}
