package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review represents customer feedback, either for a specific menu item or
// for the cafe in general when MenuItemID is empty. Immutable once created.
type Review struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserEmail  string    `json:"user_email" gorm:"size:255;not null;index"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment,omitempty" gorm:"size:2048"`
	MenuItemID string    `json:"menu_item_id,omitempty" gorm:"size:36;index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
