package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
)

func TestSMSNotifierRecordsMessage(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	events := &recordingPublisher{}
	notifier := NewSMSNotifier(store, utils.NewLocalizer(utils.Turkish), events)

	order := models.Order{ID: "o-1", PhoneNumber: "+90 555"}
	require.NoError(t, notifier.OrderReady(ctx, order))

	notifs, err := ListNotifications(ctx, store, "o-1")
	require.NoError(t, err)
	require.Len(t, notifs, 1)
	assert.Equal(t, "+90 555", notifs[0].PhoneNumber)
	assert.Equal(t, "Siparişiniz teslim almaya hazır!", notifs[0].Message)
	assert.Equal(t, []string{kds.EventStaffNotif}, events.Events())

	none, err := ListNotifications(ctx, store, "other")
	require.NoError(t, err)
	assert.Empty(t, none)
}
