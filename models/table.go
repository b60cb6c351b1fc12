package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func ParseTableStatus(s string) (TableStatus, error) {
	switch TableStatus(s) {
	case TableAvailable, TableOccupied, TableReserved:
		return TableStatus(s), nil
	}
	return "", fmt.Errorf("unknown table status %q", s)
}

// Table is a physical seating unit. Status is the only occupancy field;
// IsOccupied is derived from it.
type Table struct {
	ID        string      `gorm:"primaryKey;type:varchar(36)"`
	Number    string      `gorm:"type:varchar(50);not null;uniqueIndex"`
	Capacity  int         `gorm:"not null"`
	Status    TableStatus `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (t Table) IsOccupied() bool {
	return t.Status == TableOccupied
}

func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID         string      `json:"id"`
		Number     string      `json:"number"`
		Capacity   int         `json:"capacity"`
		Status     TableStatus `json:"status"`
		IsOccupied bool        `json:"is_occupied"`
		CreatedAt  time.Time   `json:"created_at"`
		UpdatedAt  time.Time   `json:"updated_at"`
	}{t.ID, t.Number, t.Capacity, t.Status, t.IsOccupied(), t.CreatedAt, t.UpdatedAt})
}
