package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/shared/constants"
)

// PurchaseModel is the stored form of a per-video purchase. PaidKey is
// "<user>:<video>" once paid and NULL before, backing the one-paid-purchase
// rule with a unique index.
type PurchaseModel struct {
	ID          uint       `gorm:"primarykey"`
	SID         string     `gorm:"uniqueIndex:uk_purchases_sid;not null;size:50"`
	UserID      uint       `gorm:"not null;index:idx_purchases_user_video,priority:1"`
	VideoID     uint       `gorm:"not null;index:idx_purchases_user_video,priority:2"`
	Status      string     `gorm:"not null;size:20"`
	AmountCents int64      `gorm:"not null"`
	PaidKey     *string    `gorm:"uniqueIndex:uk_purchases_paid_key;size:64"`
	PaidAt      *time.Time `gorm:"column:paid_at"`
	Version     int        `gorm:"not null;default:1"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (PurchaseModel) TableName() string {
	return constants.TablePurchases
}

func (p *PurchaseModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
