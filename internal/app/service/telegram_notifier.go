package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zenwear/zen-backend/pkg/telegram"
)

// TelegramNotifier delivers order alerts to the merchant chat.
type TelegramNotifier struct {
	client *telegram.Client
}

func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

func (n *TelegramNotifier) NotifyOrderPlaced(ctx context.Context, alert OrderAlert) error {
	return n.client.SendMessage(ctx, formatOrderAlert(alert))
}

func formatOrderAlert(alert OrderAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%d\n", alert.OrderID)
	fmt.Fprintf(&b, "User: %s (%s)\n", alert.UserName, alert.UserID)
	if alert.UserPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", alert.UserPhone)
	}
	fmt.Fprintf(&b, "Items: %d\n", alert.ItemCount)
	fmt.Fprintf(&b, "Total: %d", alert.Total)
	return b.String()
}
