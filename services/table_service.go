package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/gorm"
)

// DefaultTableCapacity is used when a table is created without a capacity.
const DefaultTableCapacity = 4

// NewTable describes a table to create. A nil Capacity means
// DefaultTableCapacity.
type NewTable struct {
	Number   string
	Capacity *int
	Status   models.TableStatus
}

type TableUpdate struct {
	Number   *string
	Capacity *int
	Status   *models.TableStatus
}

// TableStats counts tables per status for the dashboard.
type TableStats struct {
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
	Reserved  int64 `json:"reserved"`
	Total     int64 `json:"total"`
}

type TableService struct {
	store  *Store
	carts  *CartService
	events Publisher
}

// NewTableService creates the service. carts may be nil; when set, a
// deleted table's cart is dropped with it.
func NewTableService(store *Store, carts *CartService, events Publisher) *TableService {
	return &TableService{store: store, carts: carts, events: publisherOrNop(events)}
}

func (ts *TableService) List(ctx context.Context, status models.TableStatus) ([]models.Table, error) {
	var tables []models.Table
	q := ts.store.Read(ctx).Order("created_at asc, number asc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (ts *TableService) Get(ctx context.Context, id string) (*models.Table, error) {
	return findTable(ts.store.Read(ctx), id)
}

func (ts *TableService) Add(ctx context.Context, in NewTable) (*models.Table, error) {
	table := models.Table{
		Number:   strings.TrimSpace(in.Number),
		Capacity: DefaultTableCapacity,
		Status:   in.Status,
	}
	if in.Capacity != nil {
		table.Capacity = *in.Capacity
	}
	if table.Status == "" {
		table.Status = models.TableAvailable
	}
	if err := validateTable(table); err != nil {
		return nil, err
	}

	err := ts.store.Write(ctx, func(tx *gorm.DB) error {
		if err := ensureNumberFree(tx, table.Number, ""); err != nil {
			return err
		}
		return tx.Create(&table).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New table created: %s (status=%s)", table.Number, table.Status)
	ts.publish(ctx, kds.EventTableCreate, map[string]interface{}{"table": table})
	return &table, nil
}

// Update merges the given fields into the table. Unknown ids report
// ErrTableNotFound.
func (ts *TableService) Update(ctx context.Context, id string, upd TableUpdate) (*models.Table, error) {
	var table *models.Table
	err := ts.store.Write(ctx, func(tx *gorm.DB) error {
		existing, err := findTable(tx, id)
		if err != nil {
			return err
		}
		if upd.Number != nil {
			existing.Number = strings.TrimSpace(*upd.Number)
		}
		if upd.Capacity != nil {
			existing.Capacity = *upd.Capacity
		}
		if upd.Status != nil {
			existing.Status = *upd.Status
		}
		if err := validateTable(*existing); err != nil {
			return err
		}
		if upd.Number != nil {
			if err := ensureNumberFree(tx, existing.Number, existing.ID); err != nil {
				return err
			}
		}
		table = existing
		return tx.Save(existing).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Table %s updated (status=%s)", table.Number, table.Status)
	ts.publish(ctx, kds.EventTableUpdate, map[string]interface{}{"table": table})
	return table, nil
}

// Delete removes the table. Orders keep their copy of the table number.
func (ts *TableService) Delete(ctx context.Context, id string) error {
	var number string
	err := ts.store.Write(ctx, func(tx *gorm.DB) error {
		table, err := findTable(tx, id)
		if err != nil {
			return err
		}
		number = table.Number
		return tx.Delete(table).Error
	})
	if err != nil {
		return err
	}
	// Outside the write: the cart lock is always taken before the store lock.
	if ts.carts != nil {
		ts.carts.Clear(id)
	}

	utils.InfoLogger.Printf("Table %s deleted", number)
	ts.publish(ctx, kds.EventTableDelete, map[string]interface{}{"table_id": id})
	return nil
}

// SelectAvailable returns the table only when it can be seated.
func (ts *TableService) SelectAvailable(ctx context.Context, id string) (*models.Table, error) {
	table, err := findTable(ts.store.Read(ctx), id)
	if err != nil {
		return nil, err
	}
	if table.Status != models.TableAvailable {
		return nil, fmt.Errorf("table %s is %s: %w", table.Number, table.Status, ErrTableUnavailable)
	}
	return table, nil
}

func (ts *TableService) Stats(ctx context.Context) (TableStats, error) {
	return tableStats(ts.store.Read(ctx))
}

func (ts *TableService) publish(ctx context.Context, event string, data map[string]interface{}) {
	if stats, err := ts.Stats(ctx); err == nil {
		data["stats"] = stats
	}
	ts.events.Publish(event, data)
}

func tableStats(db *gorm.DB) (TableStats, error) {
	var rows []struct {
		Status models.TableStatus
		Count  int64
	}
	if err := db.Model(&models.Table{}).Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return TableStats{}, err
	}

	var stats TableStats
	for _, row := range rows {
		switch row.Status {
		case models.TableAvailable:
			stats.Available = row.Count
		case models.TableOccupied:
			stats.Occupied = row.Count
		case models.TableReserved:
			stats.Reserved = row.Count
		}
		stats.Total += row.Count
	}
	return stats, nil
}

func validateTable(t models.Table) error {
	if t.Number == "" {
		return ValidationError{Field: "number", Message: "table number is required"}
	}
	if t.Capacity <= 0 {
		return ValidationError{Field: "capacity", Message: "capacity must be positive"}
	}
	if _, err := models.ParseTableStatus(string(t.Status)); err != nil {
		return ValidationError{Field: "status", Message: err.Error()}
	}
	return nil
}

func ensureNumberFree(tx *gorm.DB, number, exceptID string) error {
	var count int64
	q := tx.Model(&models.Table{}).Where("number = ?", number)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("table %s: %w", number, ErrDuplicateTableNumber)
	}
	return nil
}

func findTable(db *gorm.DB, id string) (*models.Table, error) {
	var table models.Table
	if err := db.First(&table, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("find table %s: %w", id, err)
	}
	return &table, nil
}
