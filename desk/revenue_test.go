package desk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nsdrink-pos/client"
	"nsdrink-pos/dtos"
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
)

func dashboardWith(now time.Time, orders ...models.Order) *dtos.DashboardResponse {
	return &dtos.DashboardResponse{
		Weekly:   ledger.Weekly(orders, now, saigon),
		Today:    ledger.TodaySplit(orders, now, saigon),
		TopItems: ledger.TopItems(orders, 10),
	}
}

func paidAt(id uint, at time.Time, method models.PaymentMethod, total int64) models.Order {
	return models.Order{
		ID:            id,
		Status:        models.StatusPaid,
		PaymentMethod: method,
		TotalAmount:   total,
		CreatedAt:     at,
		Items:         []models.OrderItem{{Name: "Tea", Price: total, Quantity: 1}},
	}
}

func TestRevenueViewRefreshesOnEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderAPI(ctrl)
	events := client.NewNotifier(nil)
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, saigon)

	cash := paidAt(1, now.Add(-time.Hour), models.PaymentCash, 31500)
	transfer := paidAt(2, now.Add(-30*time.Minute), models.PaymentTransfer, 20000)
	gomock.InOrder(
		orders.EXPECT().Dashboard(gomock.Any()).Return(dashboardWith(now, cash), nil),
		orders.EXPECT().Dashboard(gomock.Any()).Return(dashboardWith(now, cash, transfer), nil),
	)

	v := NewRevenueView(orders, events, WithClock(fixedClock(now)), WithLocation(saigon))
	require.NoError(t, v.Refresh(context.Background()))
	snap := v.Snapshot()
	require.Len(t, snap.Weekly, 7)
	assert.Equal(t, int64(31500), snap.Weekly[6].Total)
	assert.Equal(t, int64(31500), snap.Today.Cash)

	events.Publish(client.EventOrderSettled, 2)
	snap = v.Snapshot()
	assert.Equal(t, int64(51500), snap.Today.Total)
	assert.Equal(t, int64(20000), snap.Today.NonCash)
	assert.Equal(t, int64(20000), snap.Weekly[6].Transfer)
	require.Len(t, snap.TopItems, 1)
	assert.Equal(t, 2, snap.TopItems[0].Quantity)

	// no refresh once closed
	v.Close()
	events.Publish(client.EventOrderSaved, 1)
	assert.Zero(t, events.Len())
}

func TestRevenueViewDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderAPI(ctrl)
	log := &recordingLogger{}
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, saigon)

	orders.EXPECT().Dashboard(gomock.Any()).
		Return(dashboardWith(now, paidAt(1, now, models.PaymentCash, 10000)), nil)
	orders.EXPECT().Dashboard(gomock.Any()).
		Return(nil, &client.APIError{StatusCode: 500, Message: "boom"})
	orders.EXPECT().Dashboard(gomock.Any()).
		Return(nil, errors.New("network down"))

	v := NewRevenueView(orders, nil, WithClock(fixedClock(now)), WithLocation(saigon), WithLogger(log))
	require.NoError(t, v.Refresh(context.Background()))
	assert.Equal(t, int64(10000), v.Snapshot().Today.Total)

	require.Error(t, v.Refresh(context.Background()))
	snap := v.Snapshot()
	assert.Len(t, snap.Weekly, 7)
	assert.Zero(t, snap.Today.Total)
	assert.NotNil(t, snap.TopItems)
	assert.Empty(t, snap.TopItems)

	require.Error(t, v.Refresh(context.Background()))
	assert.Len(t, log.lines, 2)
}

func TestRevenueViewFillsMissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := NewMockOrderAPI(ctrl)
	orders.EXPECT().Dashboard(gomock.Any()).Return(&dtos.DashboardResponse{}, nil)

	v := NewRevenueView(orders, nil, WithLocation(saigon))
	require.NoError(t, v.Refresh(context.Background()))
	snap := v.Snapshot()
	assert.Len(t, snap.Weekly, ledger.WeekDays)
	assert.NotNil(t, snap.TopItems)
}

func TestRevenueViewCloseUnsubscribes(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := NewMockSubscriber(ctrl)
	stopped := false
	events.EXPECT().Subscribe(gomock.Any()).Return(func() { stopped = true })

	v := NewRevenueView(NewMockOrderAPI(ctrl), events)
	v.Close()
	assert.True(t, stopped)
}
