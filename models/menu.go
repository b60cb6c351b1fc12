package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is an orderable dish or drink. CategoryID is a weak reference by
// value: deleting the category leaves it dangling.
type MenuItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(512)" json:"image"`
	CategoryID  string    `gorm:"type:varchar(36);index" json:"category"`
	Available   bool      `gorm:"not null" json:"available"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Snapshot copies the item into a cart line with quantity 1.
func (m MenuItem) Snapshot() OrderItem {
	return OrderItem{
		MenuItemID:  m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		CategoryID:  m.CategoryID,
		Quantity:    1,
	}
}
