package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category classifies a menu item.
type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryMains     Category = "mains"
	CategorySnacks    Category = "snacks"
	CategoryBeverages Category = "beverages"
	CategoryDesserts  Category = "desserts"
)

// SpiceLevel represents how spicy an item is prepared.
type SpiceLevel string

const (
	SpiceMild   SpiceLevel = "mild"
	SpiceMedium SpiceLevel = "medium"
	SpiceHot    SpiceLevel = "hot"
)

// MenuItem represents an item on the cafe menu. Items are immutable once
// created; there is no update or delete path.
type MenuItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description,omitempty" gorm:"size:1024"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Category    Category        `json:"category" gorm:"type:varchar(20);not null;index"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:512"`
	Spicy       SpiceLevel      `json:"spicy,omitempty" gorm:"type:varchar(10)"`
	AddOns      []string        `json:"add_ons" gorm:"serializer:json"`
	Toppings    []string        `json:"toppings" gorm:"serializer:json"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
