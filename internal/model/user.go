package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a customer account.
type User struct {
	ID            uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Phone         string    `json:"phone,omitempty" gorm:"size:50"`
	Favorites     []string  `json:"favorites" gorm:"serializer:json"`
	LoyaltyPoints int64     `json:"loyalty_points" gorm:"not null;default:0"`
	Token         string    `json:"-" gorm:"size:64"` // Current session token, rotated on login
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
