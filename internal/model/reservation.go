package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation represents a table booking. Immutable once created.
type Reservation struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserEmail string    `json:"user_email" gorm:"size:255;not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:50;not null"`
	PartySize int       `json:"party_size" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:32;not null"`
	Time      string    `json:"time" gorm:"size:32;not null"`
	Notes     string    `json:"notes,omitempty" gorm:"size:1024"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
