package models

import (
	"time"
)

// Notification is a message handed to the SMS stub. Nothing is delivered;
// the row is the record that it would have been.
type Notification struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"type:varchar(36);index" json:"order_id"`
	PhoneNumber string    `gorm:"type:varchar(50);not null" json:"phone_number"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
