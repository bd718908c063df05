package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventOrderCreated  EventKind = "order.created"
	EventOrderSaved    EventKind = "order.saved"
	EventOrderSettled  EventKind = "order.settled"
	EventOrderReopened EventKind = "order.reopened"
)

// Event tells open views that revenue-affecting data changed. It carries no
// payload beyond the order id; subscribers re-fetch.
type Event struct {
	ID      string
	Kind    EventKind
	OrderID uint
	At      time.Time
}

// Handler consumes a published event.
type Handler func(Event) error

type subscription struct {
	id int
	fn Handler
}

// Notifier is an in-process publish/subscribe hub. Delivery is synchronous
// and in registration order. A failing or panicking handler is logged and
// the rest still run.
type Notifier struct {
	logger Logger
	clock  func() time.Time

	mu   sync.Mutex
	next int
	subs []subscription
}

func NewNotifier(logger Logger) *Notifier {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Notifier{logger: logger, clock: time.Now}
}

// Subscribe registers h and returns the func that removes it. Calling the
// returned func more than once is harmless.
func (n *Notifier) Subscribe(h Handler) func() {
	if h == nil {
		return func() {}
	}
	n.mu.Lock()
	n.next++
	id := n.next
	n.subs = append(n.subs, subscription{id: id, fn: h})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *Notifier) remove(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

// Len reports the number of live subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Publish delivers an event to the current subscribers and returns it.
func (n *Notifier) Publish(kind EventKind, orderID uint) Event {
	e := Event{ID: uuid.NewString(), Kind: kind, OrderID: orderID, At: n.clock()}

	n.mu.Lock()
	subs := append([]subscription(nil), n.subs...)
	n.mu.Unlock()

	for _, s := range subs {
		n.deliver(s, e)
	}
	return e
}

func (n *Notifier) deliver(s subscription, e Event) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Printf("client: subscriber %d panicked on %s: %v", s.id, e.Kind, r)
		}
	}()
	if err := s.fn(e); err != nil {
		n.logger.Printf("client: subscriber %d failed on %s: %v", s.id, e.Kind, err)
	}
}
