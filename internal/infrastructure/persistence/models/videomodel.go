package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/doramashorts/backend/internal/shared/constants"
)

type VideoModel struct {
	ID           uint                        `gorm:"primarykey"`
	SID          string                      `gorm:"uniqueIndex:uk_videos_sid;not null;size:50"`
	Title        string                      `gorm:"not null;size:200"`
	Description  string                      `gorm:"type:text"`
	ThumbnailURL string                      `gorm:"size:1024"`
	VideoURL     string                      `gorm:"not null;size:1024"`
	Tags         datatypes.JSONSlice[string] `gorm:"type:json"`
	IsActive     bool                        `gorm:"not null"`
	PriceCents   int64                       `gorm:"not null;default:0"`
	CreatedBy    uint                        `gorm:"not null;default:0"`
	CreatedAt    time.Time                   `gorm:"not null;index:idx_videos_created"`
	UpdatedAt    time.Time                   `gorm:"not null"`
	DeletedAt    gorm.DeletedAt              `gorm:"index"`
}

func (VideoModel) TableName() string {
	return constants.TableVideos
}
