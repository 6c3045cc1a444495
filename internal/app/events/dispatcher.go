package events

import (
	"context"
	"fmt"
)

type Handler func(ctx context.Context, event any) error

// Subscriber declares which events it handles.
type Subscriber interface {
	SubscribedEvents() map[string]Handler
}

// Dispatcher routes named events to the handlers registered at construction.
// The table is fixed after NewDispatcher returns.
type Dispatcher struct {
	handlers map[string][]Handler
}

func NewDispatcher(subscribers ...Subscriber) *Dispatcher {
	handlers := make(map[string][]Handler)
	for _, subscriber := range subscribers {
		for name, handler := range subscriber.SubscribedEvents() {
			handlers[name] = append(handlers[name], handler)
		}
	}

	return &Dispatcher{
		handlers: handlers,
	}
}

// Dispatch runs the handlers for name in registration order and stops at the
// first error. Events nobody subscribed to are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, event any) error {
	for _, handler := range d.handlers[name] {
		if err := handler(ctx, event); err != nil {
			return fmt.Errorf("handler for %s failed: %w", name, err)
		}
	}

	return nil
}

func (d *Dispatcher) HasSubscribers(name string) bool {
	return len(d.handlers[name]) > 0
}
