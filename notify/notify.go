package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced    = "order.placed"
	EventOrderAssigned  = "order.assigned"
	EventOrderDelivered = "order.delivered"
)

// OrderEvent is emitted on every order lifecycle change.
type OrderEvent struct {
	Type           string          `json:"type"`
	OrderID        uint            `json:"orderId"`
	UserID         uint            `json:"userId"`
	DeliveryCrewID *uint           `json:"deliveryCrewId,omitempty"`
	Total          decimal.Decimal `json:"total"`
	Delivered      bool            `json:"delivered"`
}

// Publisher delivers order events to interested parties (broker, WebSocket
// feed). Publish failures must not fail the order operation itself.
type Publisher interface {
	Publish(ctx context.Context, ev OrderEvent) error
	Close() error
}

// Noop drops every event; used when nothing is configured.
type Noop struct{}

func (Noop) Publish(context.Context, OrderEvent) error { return nil }
func (Noop) Close() error                              { return nil }

// Fanout delivers each event to every wrapped publisher; the first error is
// returned after all have been tried.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev OrderEvent) error {
	var first error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (f Fanout) Close() error {
	var first error
	for _, p := range f {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
