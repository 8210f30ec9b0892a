package service

import (
	"context"
)

// OrderAlert carries the facts of a freshly placed order to the
// merchant channel.
type OrderAlert struct {
	OrderID   uint
	UserID    string
	UserName  string
	UserPhone string
	Total     int64
	ItemCount int
}

// Notifier delivers a one-way order alert. The checkout flow dispatches
// it fire-and-forget: delivery failure is logged and swallowed, never
// surfaced to the ordering user. Implementations may retry internally
// but must not block the caller beyond their own timeout.
type Notifier interface {
	NotifyOrderPlaced(ctx context.Context, alert OrderAlert) error
}

// NopNotifier drops every alert. Used when no bot token is configured.
type NopNotifier struct{}

func (NopNotifier) NotifyOrderPlaced(ctx context.Context, alert OrderAlert) error {
	return nil
}
