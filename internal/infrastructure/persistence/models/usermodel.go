package models

import (
	"time"

	"github.com/doramashorts/backend/internal/shared/constants"
)

type UserModel struct {
	ID           uint      `gorm:"primarykey"`
	Email        string    `gorm:"uniqueIndex:uk_users_email;not null;size:255"`
	Name         string    `gorm:"not null;size:100"`
	PasswordHash string    `gorm:"not null;size:255"`
	Role         string    `gorm:"not null;size:20;default:user"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
