// Package desk holds the front-of-house workflows: taking a new order,
// correcting or settling a bill, and keeping the revenue figures fresh.
// Views talk to the API only through the ports below.
package desk

import (
	"context"
	"errors"
	"time"

	"nsdrink-pos/client"
	"nsdrink-pos/dtos"
	"nsdrink-pos/models"
)

var (
	ErrForbidden            = errors.New("desk: only an admin can change a paid order")
	ErrConfirmationRequired = errors.New("desk: removing a saved item must be confirmed")
)

type MenuAPI interface {
	Menu(ctx context.Context) ([]models.MenuItem, error)
}

type OrderAPI interface {
	LastOrder(ctx context.Context) (*models.Order, error)
	CreateOrder(ctx context.Context, in dtos.CreateOrderInput) (*models.Order, error)
	UpdateOrder(ctx context.Context, id uint, in dtos.UpdateOrderInput) (*models.Order, error)
	ReopenOrder(ctx context.Context, id uint) (*models.Order, error)
	Dashboard(ctx context.Context) (*dtos.DashboardResponse, error)
}

// Subscriber is the subscribe half of client.Notifier.
type Subscriber interface {
	Subscribe(h client.Handler) func()
}

var (
	_ MenuAPI    = (*client.Client)(nil)
	_ OrderAPI   = (*client.Client)(nil)
	_ Subscriber = (*client.Notifier)(nil)
)

type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

type settings struct {
	logger Logger
	clock  func() time.Time
	loc    *time.Location
}

// Option customizes a workflow.
type Option func(*settings)

func WithLogger(l Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock allows tests to control "now".
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLocation sets the shop's time zone used for day boundaries.
func WithLocation(loc *time.Location) Option {
	return func(s *settings) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: nopLogger{}, clock: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
