package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/pkg/logger"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrMissingItems  = errors.New("items are required")
	ErrMissingTotal  = errors.New("total is required")
)

// CheckoutInput is everything the client sends at checkout. Items is
// kept raw so that the snapshot written to the ledger is exactly what
// the client saw in its cart. Total is a pointer to tell a missing
// field apart from a legitimate zero.
type CheckoutInput struct {
	UserName    string
	UserPhone   string
	UserAddress string
	Items       json.RawMessage
	Total       *int64
}

type OrderService interface {
	Checkout(userID string, input CheckoutInput) (*model.Order, error)
	GetUserOrders(userID string) ([]model.Order, error)
	UpdateOrderStatus(orderID uint, status model.OrderStatus) error
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	notifier  Notifier
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, notifier Notifier) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		notifier:  notifier,
	}
}

// Checkout persists the order, then clears the cart, then dispatches
// the merchant alert. The three steps are deliberately not atomic: the
// ledger write is the only one that can fail the request. A cart that
// survives a failed clear, or an alert that never arrives, costs a log
// line and nothing else.
func (s *orderService) Checkout(userID string, input CheckoutInput) (*model.Order, error) {
	logger.Info("Processing checkout", map[string]interface{}{
		"user_id": userID,
	})

	if isNullJSON(input.Items) {
		logger.Warn("Checkout rejected, missing items", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrMissingItems
	}
	if input.Total == nil {
		logger.Warn("Checkout rejected, missing total", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrMissingTotal
	}

	order := &model.Order{
		UserID:      userID,
		UserName:    input.UserName,
		UserPhone:   input.UserPhone,
		UserAddress: input.UserAddress,
		Items:       datatypes.JSON(normalizeItems(input.Items)),
		Total:       *input.Total,
		Status:      model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		logger.Error("Failed to persist order", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	// The order is committed. From here every failure is non-fatal.
	if err := s.cartRepo.DeleteByUserID(userID); err != nil {
		logger.Error("Failed to clear cart after checkout", err, map[string]interface{}{
			"user_id":  userID,
			"order_id": order.ID,
		})
	}

	alert := OrderAlert{
		OrderID:   order.ID,
		UserID:    order.UserID,
		UserName:  order.UserName,
		UserPhone: order.UserPhone,
		Total:     order.Total,
		ItemCount: countItems(order.Items),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.NotifyOrderPlaced(ctx, alert); err != nil {
			logger.Error("Failed to deliver order alert", err, map[string]interface{}{
				"order_id": alert.OrderID,
			})
		}
	}()

	logger.Info("Checkout completed", map[string]interface{}{
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.Total,
	})
	return order, nil
}

func (s *orderService) GetUserOrders(userID string) ([]model.Order, error) {
	logger.Debug("Fetching user orders", map[string]interface{}{
		"user_id": userID,
	})

	orders, err := s.orderRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User orders fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(orders),
	})
	return orders, nil
}

func (s *orderService) UpdateOrderStatus(orderID uint, status model.OrderStatus) error {
	if !status.Valid() {
		logger.Warn("Rejected order status update", map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		return ErrInvalidStatus
	}

	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		logger.Error("Failed to update order status", err, map[string]interface{}{
			"order_id": orderID,
			"status":   status,
		})
		return err
	}

	logger.Info("Order status updated", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}

// isNullJSON reports whether the raw payload is absent or a JSON null.
func isNullJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// normalizeItems unwraps the double-encoding some clients produce. A
// JSON string whose content is itself valid JSON becomes that inner
// document; any other payload is stored as received.
func normalizeItems(raw json.RawMessage) []byte {
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if json.Valid([]byte(inner)) {
			return []byte(inner)
		}
		// A plain string that is not JSON gets stored re-quoted.
		requoted, err := json.Marshal(inner)
		if err == nil {
			return requoted
		}
	}
	return raw
}

// countItems sums item quantities out of the snapshot, treating a
// missing quantity as 1. A snapshot that is not an array of objects
// counts as zero items; the alert is still sent.
func countItems(snapshot datatypes.JSON) int {
	var items []struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.Unmarshal(snapshot, &items); err != nil {
		return 0
	}
	count := 0
	for _, item := range items {
		if item.Quantity == nil {
			count++
			continue
		}
		count += *item.Quantity
	}
	return count
}
