package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/gorm"
)

// OrderService turns carts into orders and moves orders through their
// statuses, keeping table occupancy in step.
type OrderService struct {
	store    *Store
	carts    *CartService
	notifier Notifier
	events   Publisher
}

func NewOrderService(store *Store, carts *CartService, notifier Notifier, events Publisher) *OrderService {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &OrderService{
		store:    store,
		carts:    carts,
		notifier: notifier,
		events:   publisherOrNop(events),
	}
}

// Submit places the table's cart as a pending order and marks the table
// occupied. Nothing is written when validation fails; the cart is cleared
// only after the order is stored.
func (s *OrderService) Submit(ctx context.Context, tableID, customerName, phoneNumber string) (*models.Order, error) {
	customerName = strings.TrimSpace(customerName)
	phoneNumber = strings.TrimSpace(phoneNumber)
	if tableID == "" {
		return nil, ValidationError{Field: "table", Message: "no table selected"}
	}
	if customerName == "" {
		return nil, ValidationError{Field: "customer_name", Message: "customer name is required"}
	}
	if phoneNumber == "" {
		return nil, ValidationError{Field: "phone_number", Message: "phone number is required"}
	}

	// An unknown table is reported as such even when it has no cart.
	if _, err := findTable(s.store.Read(ctx), tableID); err != nil {
		return nil, err
	}

	var (
		order models.Order
		table *models.Table
	)
	err := s.carts.withCart(tableID, false, func(cart *Cart) error {
		if cart.Len() == 0 {
			return ValidationError{Field: "items", Message: "cart is empty"}
		}
		items := cart.Items()
		for i := range items {
			items[i].Position = i
		}

		err := s.store.Write(ctx, func(tx *gorm.DB) error {
			var err error
			table, err = findTable(tx, tableID)
			if err != nil {
				return err
			}

			order = models.Order{
				TableNumber:  table.Number,
				CustomerName: customerName,
				PhoneNumber:  phoneNumber,
				Items:        items,
				Status:       models.StatusPending,
				TotalAmount:  models.CalculateTotal(items),
				Timestamp:    s.store.Now(),
			}
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("create order: %w", err)
			}

			table.Status = models.TableOccupied
			return tx.Model(table).Update("status", models.TableOccupied).Error
		})
		if err != nil {
			return err
		}

		cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("New order %s for table %s (%d lines, total %.2f)",
		order.ID, order.TableNumber, len(order.Items), order.TotalAmount)
	s.events.Publish(kds.EventOrderCreate, order)
	s.events.Publish(kds.EventTableUpdate, map[string]interface{}{"table": table})
	return &order, nil
}

// AdvanceStatus sets any of the known statuses; progression is not
// enforced so staff can correct mistakes. Delivering an order frees the
// table carrying the order's table number, if that table still exists.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, status, changedBy string) (*models.Order, error) {
	next, err := models.ParseOrderStatus(status)
	if err != nil {
		return nil, ValidationError{Field: "status", Message: err.Error()}
	}

	var (
		previous models.OrderStatus
		released *models.Table
	)
	err = s.store.Write(ctx, func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		previous = order.Status

		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":     next,
			"updated_at": s.store.Now(),
		}).Error; err != nil {
			return err
		}

		entry := models.OrderStatusLog{
			OrderID:    order.ID,
			FromStatus: previous,
			ToStatus:   next,
			ChangedBy:  changedBy,
			ChangedAt:  s.store.Now(),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if next != models.StatusDelivered {
			return nil
		}
		var table models.Table
		err := tx.Where("number = ?", order.TableNumber).First(&table).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.InfoLogger.Printf("Order %s delivered, table %s no longer exists; release skipped", order.ID, order.TableNumber)
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&table).Update("status", models.TableAvailable).Error; err != nil {
			return err
		}
		released = &table
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s status %s -> %s by %s", order.ID, previous, next, changedBy)
	s.events.Publish(kds.EventOrderUpdate, order)
	if released != nil {
		s.events.Publish(kds.EventTableUpdate, map[string]interface{}{"table": released})
	}

	if next == models.StatusReady && previous != models.StatusReady {
		if err := s.notifier.OrderReady(ctx, *order); err != nil {
			utils.ErrorLogger.Printf("Failed to notify customer for order %s: %v", order.ID, err)
		}
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := withItems(s.store.Read(ctx)).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order %s: %w", orderID, err)
	}
	return &order, nil
}

// List returns all orders, newest first, optionally narrowed to one status.
func (s *OrderService) List(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	q := withItems(s.store.Read(ctx)).Order("timestamp desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Today returns the orders whose timestamp falls on the current calendar
// date in the store's time zone, newest first.
func (s *OrderService) Today(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	start, end := dayBounds(s.store.Now(), s.store.Location)

	var orders []models.Order
	q := withItems(s.store.Read(ctx)).
		Where("timestamp >= ? AND timestamp < ?", start, end).
		Order("timestamp desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) History(ctx context.Context, orderID string) ([]models.OrderStatusLog, error) {
	db := s.store.Read(ctx)
	var count int64
	if err := db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrOrderNotFound
	}

	var logs []models.OrderStatusLog
	if err := db.Where("order_id = ?", orderID).Order("changed_at asc, id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// dayBounds returns the half-open UTC range of clock's calendar day in loc.
// Timestamps are stored in UTC so the range compares in the database.
func dayBounds(clock time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start := now.With(clock.In(loc)).BeginningOfDay()
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

func withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	})
}
