package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryIcon is the closed set of icons a category can display.
type CategoryIcon string

const (
	IconUtensils CategoryIcon = "Utensils"
	IconCoffee   CategoryIcon = "Coffee"
	IconIceCream CategoryIcon = "IceCream"
	IconPizza    CategoryIcon = "Pizza"
	IconSandwich CategoryIcon = "Sandwich"
)

var categoryIcons = []CategoryIcon{IconUtensils, IconCoffee, IconIceCream, IconPizza, IconSandwich}

// CategoryIcons lists the valid icons in display order.
func CategoryIcons() []CategoryIcon {
	out := make([]CategoryIcon, len(categoryIcons))
	copy(out, categoryIcons)
	return out
}

// ParseCategoryIcon rejects anything outside the closed icon set.
func ParseCategoryIcon(s string) (CategoryIcon, error) {
	for _, icon := range categoryIcons {
		if string(icon) == s {
			return icon, nil
		}
	}
	return "", fmt.Errorf("unknown category icon %q", s)
}

func (i *CategoryIcon) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	icon, err := ParseCategoryIcon(s)
	if err != nil {
		return err
	}
	*i = icon
	return nil
}

type Category struct {
	ID        string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string       `gorm:"type:varchar(100);not null" json:"name"`
	Icon      CategoryIcon `gorm:"type:varchar(20);not null" json:"icon"`
	CreatedAt time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
