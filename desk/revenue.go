package desk

import (
	"context"
	"sync"

	"nsdrink-pos/client"
	"nsdrink-pos/ledger"
)

// RevenueSnapshot is what the home screen shows.
type RevenueSnapshot struct {
	Weekly   []ledger.DailyBucket
	Today    ledger.Split
	TopItems []ledger.ItemCount
}

// RevenueView keeps the trailing-week figures and re-fetches whenever an
// order is created, saved, settled or reopened. It reads the dashboard, which
// every logged-in role may see.
type RevenueView struct {
	orderAPI OrderAPI
	settings

	mu       sync.Mutex
	snapshot RevenueSnapshot
	stop     func()
}

// NewRevenueView subscribes to events. Call Close when the view goes away.
func NewRevenueView(orders OrderAPI, events Subscriber, opts ...Option) *RevenueView {
	v := &RevenueView{orderAPI: orders, settings: newSettings(opts)}
	v.snapshot = v.empty()
	v.stop = func() {}
	if events != nil {
		v.stop = events.Subscribe(func(client.Event) error {
			_ = v.Refresh(context.Background())
			return nil
		})
	}
	return v
}

func (v *RevenueView) empty() RevenueSnapshot {
	return RevenueSnapshot{
		Weekly:   ledger.Weekly(nil, v.clock(), v.loc),
		TopItems: []ledger.ItemCount{},
	}
}

// Refresh re-fetches the dashboard. On failure the view shows empty figures
// and the error is logged and returned.
func (v *RevenueView) Refresh(ctx context.Context) error {
	res, err := v.orderAPI.Dashboard(ctx)
	if err != nil {
		v.logger.Printf("desk: refresh revenue: %v", err)
		v.set(v.empty())
		return err
	}

	snap := v.empty()
	if res != nil {
		if len(res.Weekly) > 0 {
			snap.Weekly = res.Weekly
		}
		snap.Today = res.Today
		if res.TopItems != nil {
			snap.TopItems = res.TopItems
		}
	}
	v.set(snap)
	return nil
}

func (v *RevenueView) set(s RevenueSnapshot) {
	v.mu.Lock()
	v.snapshot = s
	v.mu.Unlock()
}

func (v *RevenueView) Snapshot() RevenueSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot
}

// Close stops listening for order events.
func (v *RevenueView) Close() {
	v.stop()
}
