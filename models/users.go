package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BootstrapAdminID is the seeded admin that can never be removed.
const BootstrapAdminID = "1"

type Admin struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a Admin) IsBootstrap() bool {
	return a.ID == BootstrapAdminID
}
