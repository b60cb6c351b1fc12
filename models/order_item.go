package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a menu item plus a quantity. Cart lines are
// OrderItems without an OrderID; later catalog edits never reach them.
type OrderItem struct {
	ID                  string  `gorm:"primaryKey;type:varchar(36)" json:"-"`
	OrderID             string  `gorm:"type:varchar(36);index" json:"-"`
	Position            int     `gorm:"not null" json:"-"`
	MenuItemID          string  `gorm:"type:varchar(36);not null" json:"id"`
	Name                string  `gorm:"type:varchar(255);not null" json:"name"`
	Description         string  `gorm:"type:text" json:"description"`
	Price               float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Image               string  `gorm:"type:varchar(512)" json:"image"`
	CategoryID          string  `gorm:"type:varchar(36)" json:"category"`
	Quantity            int     `gorm:"not null" json:"quantity"`
	SpecialInstructions string  `gorm:"type:text" json:"special_instructions,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
