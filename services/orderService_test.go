package services

import (
	"bytes"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nsdrink-pos/config"
	"nsdrink-pos/dtos"
	"nsdrink-pos/ledger"
	"nsdrink-pos/models"
)

var saigon = time.FixedZone("ICT", 7*60*60)

func setupDB(t *testing.T, now func() time.Time) {
	t.Helper()
	setupDBWith(t, &gorm.Config{NowFunc: now})
}

func setupDBWith(t *testing.T, cfg *gorm.Config) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db
	config.App = config.Config{JWTSecret: "s", Location: saigon}
}

func newOrder(table int) dtos.CreateOrderInput {
	return dtos.CreateOrderInput{
		TableNumber: table,
		Items:       []dtos.OrderItemInput{{Name: "Tea", Price: 10000, Quantity: 1}},
	}
}

func TestOrderNumbersRestartEachMonth(t *testing.T) {
	setupDB(t, nil)
	now := time.Date(2026, 9, 30, 22, 0, 0, 0, saigon)
	svc := &orderService{now: func() time.Time { return now }}
	actor := Actor{Phone: "0911111111", Role: models.RoleUser}

	for want := 1; want <= 3; want++ {
		o, err := svc.Create(newOrder(1), actor)
		require.NoError(t, err)
		assert.Equal(t, want, o.OrderNumber)
		assert.Equal(t, 2026, o.Year)
		assert.Equal(t, 9, o.Month)
	}

	// 17:30 UTC on the 30th is already October in the shop
	now = time.Date(2026, 9, 30, 17, 30, 0, 0, time.UTC)
	o, err := svc.Create(newOrder(2), actor)
	require.NoError(t, err)
	assert.Equal(t, 1, o.OrderNumber)
	assert.Equal(t, 10, o.Month)

	var seq []models.OrderSequence
	require.NoError(t, config.DB.Order("month").Find(&seq).Error)
	assert.Equal(t, []models.OrderSequence{{Year: 2026, Month: 9, Value: 3}, {Year: 2026, Month: 10, Value: 1}}, seq)
}

func TestCreateRejectsEmptyCart(t *testing.T) {
	setupDB(t, nil)
	svc := NewOrderService()

	_, err := svc.Create(dtos.CreateOrderInput{TableNumber: 1}, Actor{Phone: "1"})
	assert.ErrorIs(t, err, ledger.ErrEmptyCart)

	in := newOrder(1)
	in.Items[0].Quantity = -1
	_, err = svc.Create(in, Actor{Phone: "1"})
	assert.ErrorIs(t, err, ledger.ErrNegativeQuantity)
}

func TestUpdateSettleAndReopen(t *testing.T) {
	setupDB(t, nil)
	svc := NewOrderService()
	staff := Actor{Phone: "0911111111", Role: models.RoleUser}
	admin := Actor{Phone: "0900000000", Role: models.RoleAdmin}

	o, err := svc.Create(newOrder(1), staff)
	require.NoError(t, err)

	paid := "paid"
	discount := 15
	settled, err := svc.Update(o.ID, dtos.UpdateOrderInput{Status: &paid, Discount: &discount}, staff)
	require.NoError(t, err)
	assert.True(t, settled.IsPaid())
	assert.Equal(t, int64(8500), settled.TotalAmount)
	assert.Equal(t, staff.Phone, settled.UpdatedBy)

	// settling twice is a plain save of a paid order
	_, err = svc.Update(o.ID, dtos.UpdateOrderInput{Status: &paid}, staff)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Reopen(o.ID, admin)
	require.NoError(t, err)
	_, err = svc.Reopen(o.ID, admin)
	assert.ErrorIs(t, err, ledger.ErrNotPaid)

	_, err = svc.Get(9999)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	var actions []string
	require.NoError(t, config.DB.Model(&models.AuditLog{}).Order("id").Pluck("action", &actions).Error)
	assert.Equal(t, []string{"create", "settle", "reopen"}, actions)
}

func TestCompletedUsesShopDays(t *testing.T) {
	// 01:00 on the 18th in the shop is still the 17th in UTC
	now := time.Date(2026, 10, 18, 1, 0, 0, 0, saigon)
	clock := func() time.Time { return now }
	setupDB(t, clock)
	svc := &orderService{now: clock}
	actor := Actor{Phone: "1", Role: models.RoleAdmin}
	paid := "paid"
	transfer := "transfer"

	o, err := svc.Create(newOrder(1), actor)
	require.NoError(t, err)
	_, err = svc.Update(o.ID, dtos.UpdateOrderInput{Status: &paid, PaymentMethod: &transfer}, actor)
	require.NoError(t, err)
	_, err = svc.Create(newOrder(2), actor)
	require.NoError(t, err)

	res, err := svc.Completed(dtos.CompletedQuery{StartDate: "2026-10-18", EndDate: "2026-10-18"})
	require.NoError(t, err)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, ledger.Revenue{Total: 10000, Transfer: 10000}, res.Revenue)
	assert.Equal(t, []ledger.ItemCount{{Name: "Tea", Quantity: 1}}, res.TopItems)

	res, err = svc.Completed(dtos.CompletedQuery{EndDate: "2026-10-17"})
	require.NoError(t, err)
	assert.Empty(t, res.Orders)
	assert.Zero(t, res.Revenue.Total)

	res, err = svc.Completed(dtos.CompletedQuery{StartDate: "2026-10-18", PaymentMethod: "cash"})
	require.NoError(t, err)
	assert.Empty(t, res.Orders)

	dash, err := svc.Dashboard()
	require.NoError(t, err)
	require.Len(t, dash.Weekly, ledger.WeekDays)
	assert.Equal(t, int64(10000), dash.Weekly[ledger.WeekDays-1].Transfer)
	assert.Equal(t, ledger.Split{Total: 10000, NonCash: 10000}, dash.Today)

	_, err = svc.Completed(dtos.CompletedQuery{StartDate: "yesterday"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestFirstOrderOfMonthLogsNoError(t *testing.T) {
	var buf bytes.Buffer
	setupDBWith(t, &gorm.Config{
		Logger: logger.New(log.New(&buf, "", 0), logger.Config{LogLevel: logger.Warn}),
	})
	svc := NewOrderService()

	o, err := svc.Create(newOrder(1), Actor{Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1, o.OrderNumber)
	assert.NotContains(t, buf.String(), "record not found")
}

func TestDashboardLoadsOnlyRecentOrders(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, saigon)
	setupDB(t, func() time.Time { return now })
	svc := &orderService{now: func() time.Time { return now }}

	old := models.Order{
		OrderNumber: 1, Year: 2026, Month: 8, TableNumber: 1,
		Status: models.StatusPaid, PaymentMethod: models.PaymentCash, TotalAmount: 50000,
		CreatedAt: now.AddDate(0, -2, 0),
	}
	recent := models.Order{
		OrderNumber: 1, Year: 2026, Month: 10, TableNumber: 2,
		Status: models.StatusPaid, PaymentMethod: models.PaymentCash, TotalAmount: 20000,
		CreatedAt: now.Add(-time.Hour),
	}
	require.NoError(t, config.DB.Create(&old).Error)
	require.NoError(t, config.DB.Create(&recent).Error)

	var loaded int64
	require.NoError(t, config.DB.Callback().Query().After("gorm:query").Register("count_orders", func(db *gorm.DB) {
		if db.Statement.Table == "orders" {
			loaded += db.Statement.RowsAffected
		}
	}))

	dash, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(1), loaded)
	assert.Equal(t, ledger.Split{Total: 20000, Cash: 20000}, dash.Today)
}
