package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the kitchen/service progress of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

var orderStatuses = []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered}

// OrderStatuses returns the statuses in progress-stepper order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderStatuses))
	copy(out, orderStatuses)
	return out
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Step is the position of the status in the progress stepper, starting at 0.
func (s OrderStatus) Step() int {
	for i, st := range orderStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Order is immutable once created except for Status. TableNumber is a copy of
// the table's number at submission time, not a live reference.
type Order struct {
	ID           string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TableNumber  string      `gorm:"type:varchar(50);not null;index" json:"table_number"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	PhoneNumber  string      `gorm:"type:varchar(50);not null" json:"phone_number"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalAmount  float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Timestamp    time.Time   `gorm:"not null;index" json:"timestamp"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	// Day filters compare stored strings, so every row shares one offset.
	o.Timestamp = o.Timestamp.UTC()
	return nil
}

// CalculateTotal sums price*quantity over the lines, rounded to cents.
func CalculateTotal(items []OrderItem) float64 {
	return SumLines(items).InexactFloat64()
}

// SumLines is CalculateTotal in decimal form.
func SumLines(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total.Round(2)
}
