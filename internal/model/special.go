package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Special is a promoted menu offer with its own price.
type Special struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description,omitempty" gorm:"size:1024"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Special) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
