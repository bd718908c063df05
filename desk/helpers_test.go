package desk

import (
	"fmt"
	"time"

	"nsdrink-pos/models"
	"nsdrink-pos/session"
)

var saigon = time.FixedZone("ICT", 7*60*60)

var (
	staff = session.Session{Phone: "0911111111", Name: "Staff", Role: models.RoleUser, Token: "t1"}
	admin = session.Session{Phone: "0900000000", Name: "Admin", Role: models.RoleAdmin, Token: "t2"}
)

type recordingLogger struct{ lines []string }

func (l *recordingLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func pendingOrder() models.Order {
	return models.Order{
		ID:          5,
		OrderNumber: 3,
		Year:        2026,
		Month:       10,
		TableNumber: 2,
		Items: []models.OrderItem{
			{Name: "Tea", Price: 10000, Quantity: 2},
			{Name: "Coffee", Price: 15000, Quantity: 1},
		},
		Status:        models.StatusPending,
		PaymentMethod: models.PaymentCash,
		TotalAmount:   35000,
	}
}

func paidOrder() models.Order {
	o := pendingOrder()
	o.Status = models.StatusPaid
	return o
}
