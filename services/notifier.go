package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/gorm"
)

// Notifier tells a customer their order is ready.
type Notifier interface {
	OrderReady(ctx context.Context, order models.Order) error
}

type nopNotifier struct{}

func (nopNotifier) OrderReady(context.Context, models.Order) error { return nil }

// SMSNotifier is a stub: it logs the SMS, records it and lets staff screens
// know. Nothing leaves the process.
type SMSNotifier struct {
	store     *Store
	localizer utils.Localizer
	events    Publisher
}

func NewSMSNotifier(store *Store, localizer utils.Localizer, events Publisher) *SMSNotifier {
	return &SMSNotifier{store: store, localizer: localizer, events: publisherOrNop(events)}
}

func (n *SMSNotifier) OrderReady(ctx context.Context, order models.Order) error {
	notif := models.Notification{
		OrderID:     order.ID,
		PhoneNumber: order.PhoneNumber,
		Message:     n.localizer.T("orderReadySms"),
		CreatedAt:   n.store.Now(),
	}
	if err := n.store.Write(ctx, func(tx *gorm.DB) error {
		return tx.Create(&notif).Error
	}); err != nil {
		return err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"phone":    order.PhoneNumber,
	}).Info("SMS (stub): " + notif.Message)
	n.events.Publish(kds.EventStaffNotif, notif)
	return nil
}

// ListNotifications returns the recorded SMS stubs, newest first.
func ListNotifications(ctx context.Context, store *Store, orderID string) ([]models.Notification, error) {
	var notifs []models.Notification
	q := store.Read(ctx).Order("created_at desc, id desc")
	if orderID != "" {
		q = q.Where("order_id = ?", orderID)
	}
	if err := q.Find(&notifs).Error; err != nil {
		return nil, err
	}
	return notifs, nil
}
