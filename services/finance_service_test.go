package services

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.OrderCount)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AverageOrder)
	assert.False(t, math.IsNaN(summary.AverageOrder))
	assert.Len(t, summary.ByStatus, len(models.OrderStatuses()))
}

func TestSummarize(t *testing.T) {
	orders := []models.Order{
		{TotalAmount: 30.97, Status: models.StatusPending},
		{TotalAmount: 10.00, Status: models.StatusDelivered},
		{TotalAmount: 0.10, Status: models.StatusDelivered},
	}
	summary := Summarize(orders)
	assert.Equal(t, 3, summary.OrderCount)
	assert.Equal(t, 41.07, summary.TotalRevenue)
	assert.Equal(t, 13.69, summary.AverageOrder)
	assert.Equal(t, 2, summary.ByStatus[models.StatusDelivered])
}

func TestFinanceTodayAndDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	finance := NewFinanceService(f.orders, f.tables)

	summary, orders, err := finance.Today(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Equal(t, 0.0, summary.AverageOrder)
	assert.Equal(t, "2026-03-10", summary.Date)

	f.placeOrder(t, "1", "1", "1", "3")
	f.placeOrder(t, "2", "2")

	stats, err := finance.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalOrders)
	assert.Equal(t, 2, stats.Today.OrderCount)
	assert.Equal(t, 39.96, stats.Today.TotalRevenue)
	assert.Equal(t, 19.98, stats.Today.AverageOrder)
	assert.EqualValues(t, 2, stats.Tables.Occupied)
}

func TestWriteDailyReport(t *testing.T) {
	orders := []models.Order{
		{TableNumber: "1", CustomerName: "Jörg", Status: models.StatusReady, TotalAmount: 30.97, Timestamp: fixedNow},
	}
	var buf bytes.Buffer
	err := WriteDailyReport(&buf, Summarize(orders), orders, utils.NewLocalizer(utils.German))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	buf.Reset()
	require.NoError(t, WriteDailyReport(&buf, Summarize(nil), nil, utils.NewLocalizer(utils.English)))
	assert.NotZero(t, buf.Len())
}

func TestFinanceMonitorPublishesOnChange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	events := &recordingPublisher{}
	monitor := NewFinanceMonitor(NewFinanceService(f.orders, f.tables), events)

	assert.True(t, monitor.check(ctx))
	assert.False(t, monitor.check(ctx))

	f.placeOrder(t, "1", "1")
	assert.True(t, monitor.check(ctx))
	assert.Equal(t, []string{kds.EventFinanceTally, kds.EventFinanceTally}, events.Events())

	monitor.Stop()
	monitor.Stop()
}
