package services

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/utils"
)

// FinanceMonitor polls the dashboard figures and pushes them to staff
// screens whenever they change. Day rollover is picked up without any order
// activity.
type FinanceMonitor struct {
	finance  *FinanceService
	events   Publisher
	Interval time.Duration
	StopChan chan struct{}

	mu   sync.Mutex
	last *DashboardStats
	once sync.Once
}

func NewFinanceMonitor(finance *FinanceService, events Publisher) *FinanceMonitor {
	return &FinanceMonitor{
		finance:  finance,
		events:   publisherOrNop(events),
		Interval: 5 * time.Second,
		StopChan: make(chan struct{}),
	}
}

func (fm *FinanceMonitor) Start() {
	go func() {
		ticker := time.NewTicker(fm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				fm.check(context.Background())
			case <-fm.StopChan:
				return
			}
		}
	}()
	utils.InfoLogger.Printf("Finance monitor started (interval=%s)", fm.Interval)
}

func (fm *FinanceMonitor) Stop() {
	fm.once.Do(func() { close(fm.StopChan) })
}

// check publishes the current figures if they differ from the last ones
// sent and reports whether it did.
func (fm *FinanceMonitor) check(ctx context.Context) bool {
	stats, err := fm.finance.Dashboard(ctx)
	if err != nil {
		utils.ErrorLogger.Printf("Error computing dashboard stats: %v", err)
		return false
	}

	fm.mu.Lock()
	changed := fm.last == nil || !reflect.DeepEqual(*fm.last, stats)
	if changed {
		fm.last = &stats
	}
	fm.mu.Unlock()

	if changed {
		fm.events.Publish(kds.EventFinanceTally, stats)
	}
	return changed
}
