package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/internal/db"
)

// recordingNotifier captures alerts on a channel so tests can wait for
// the fire-and-forget goroutine.
type recordingNotifier struct {
	alerts chan OrderAlert
	err    error
}

func newRecordingNotifier(err error) *recordingNotifier {
	return &recordingNotifier{
		alerts: make(chan OrderAlert, 1),
		err:    err,
	}
}

func (n *recordingNotifier) NotifyOrderPlaced(ctx context.Context, alert OrderAlert) error {
	n.alerts <- alert
	return n.err
}

func (n *recordingNotifier) wait(t *testing.T) OrderAlert {
	t.Helper()
	select {
	case alert := <-n.alerts:
		return alert
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for order alert")
		return OrderAlert{}
	}
}

// failingOrderRepository rejects every write.
type failingOrderRepository struct{}

var errStorage = errors.New("storage unavailable")

func (failingOrderRepository) Create(order *model.Order) error { return errStorage }
func (failingOrderRepository) FindByID(id uint) (*model.Order, error) {
	return nil, errStorage
}
func (failingOrderRepository) FindByUserID(userID string) ([]model.Order, error) {
	return nil, errStorage
}
func (failingOrderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	return errStorage
}

func setupOrderServiceTest(t *testing.T) (OrderService, CartService, *recordingNotifier, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	notifier := newRecordingNotifier(nil)

	orderService := NewOrderService(orderRepo, cartRepo, notifier)
	cartService := NewCartService(cartRepo)

	return orderService, cartService, notifier, testDB
}

func int64Ptr(v int64) *int64 { return &v }

func TestOrderService_Checkout_Success(t *testing.T) {
	orderService, cartService, notifier, _ := setupOrderServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", 1, "M", 2))

	order, err := orderService.Checkout("user-1", CheckoutInput{
		UserName:  "Kim",
		UserPhone: "010-0000-0000",
		Items:     json.RawMessage(`[{"product_id":1,"quantity":2}]`),
		Total:     int64Ptr(5980),
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	// Total is stored verbatim, never recomputed
	assert.Equal(t, int64(5980), order.Total)

	// Cart is wiped
	items, _ := cartService.GetUserCart("user-1")
	assert.Len(t, items, 0)

	// Alert carries the order facts
	alert := notifier.wait(t)
	assert.Equal(t, order.ID, alert.OrderID)
	assert.Equal(t, "Kim", alert.UserName)
	assert.Equal(t, int64(5980), alert.Total)
	assert.Equal(t, 2, alert.ItemCount)
}

func TestOrderService_Checkout_TotalStoredVerbatim(t *testing.T) {
	orderService, _, notifier, _ := setupOrderServiceTest(t)

	// A total that cannot match the items is still accepted
	order, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[{"product_id":1,"quantity":100}]`),
		Total: int64Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.Total)
	notifier.wait(t)
}

func TestOrderService_Checkout_ZeroTotalAccepted(t *testing.T) {
	orderService, _, notifier, _ := setupOrderServiceTest(t)

	order, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[]`),
		Total: int64Ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), order.Total)
	notifier.wait(t)
}

func TestOrderService_Checkout_MissingItems(t *testing.T) {
	orderService, _, _, _ := setupOrderServiceTest(t)

	_, err := orderService.Checkout("user-1", CheckoutInput{
		Total: int64Ptr(100),
	})
	assert.ErrorIs(t, err, ErrMissingItems)

	_, err = orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`null`),
		Total: int64Ptr(100),
	})
	assert.ErrorIs(t, err, ErrMissingItems)
}

func TestOrderService_Checkout_MissingTotal(t *testing.T) {
	orderService, _, _, _ := setupOrderServiceTest(t)

	_, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[]`),
	})
	assert.ErrorIs(t, err, ErrMissingTotal)
}

func TestOrderService_Checkout_StringEncodedItems(t *testing.T) {
	orderService, _, notifier, _ := setupOrderServiceTest(t)

	// Some clients serialize the cart before putting it in the body
	order, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`"[{\"product_id\":1,\"quantity\":3}]"`),
		Total: int64Ptr(8970),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"product_id":1,"quantity":3}]`, string(order.Items))

	alert := notifier.wait(t)
	assert.Equal(t, 3, alert.ItemCount)
}

func TestOrderService_Checkout_MissingQuantityCountsAsOne(t *testing.T) {
	orderService, _, notifier, _ := setupOrderServiceTest(t)

	_, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[{"product_id":1},{"product_id":2,"quantity":2}]`),
		Total: int64Ptr(100),
	})
	require.NoError(t, err)

	alert := notifier.wait(t)
	assert.Equal(t, 3, alert.ItemCount)
}

func TestOrderService_Checkout_ClearsRowsAddedAfterSnapshot(t *testing.T) {
	orderService, cartService, notifier, _ := setupOrderServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", 1, "M", 1))

	// The client built its snapshot, then another add slipped in
	snapshot := json.RawMessage(`[{"product_id":1,"quantity":1}]`)
	require.NoError(t, cartService.AddToCart("user-1", 2, "L", 1))

	_, err := orderService.Checkout("user-1", CheckoutInput{
		Items: snapshot,
		Total: int64Ptr(2990),
	})
	require.NoError(t, err)
	notifier.wait(t)

	// The clear is unconditional, so the late add is gone too
	items, _ := cartService.GetUserCart("user-1")
	assert.Len(t, items, 0)
}

func TestOrderService_Checkout_PersistFailureLeavesCartIntact(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	notifier := newRecordingNotifier(nil)
	orderService := NewOrderService(failingOrderRepository{}, cartRepo, notifier)
	cartService := NewCartService(cartRepo)

	require.NoError(t, cartService.AddToCart("user-1", 1, "M", 1))

	_, err = orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[{"product_id":1,"quantity":1}]`),
		Total: int64Ptr(2990),
	})
	require.Error(t, err)

	// Nothing downstream ran
	items, _ := cartService.GetUserCart("user-1")
	assert.Len(t, items, 1)
	select {
	case <-notifier.alerts:
		t.Fatal("alert must not be sent when persist fails")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestOrderService_Checkout_NotifierFailureStillSucceeds(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	orderRepo := repository.NewOrderRepository(testDB)
	notifier := newRecordingNotifier(errors.New("telegram down"))
	orderService := NewOrderService(orderRepo, cartRepo, notifier)

	order, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[]`),
		Total: int64Ptr(100),
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	notifier.wait(t)

	// The order is durable regardless of delivery failure
	found, err := orderRepo.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), found.Total)
}

func TestOrderService_GetUserOrders(t *testing.T) {
	orderService, _, notifier, _ := setupOrderServiceTest(t)

	for i := 0; i < 2; i++ {
		_, err := orderService.Checkout("user-1", CheckoutInput{
			Items: json.RawMessage(`[]`),
			Total: int64Ptr(int64(100 * (i + 1))),
		})
		require.NoError(t, err)
		notifier.wait(t)
	}

	orders, err := orderService.GetUserOrders("user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	orders, err = orderService.GetUserOrders("stranger")
	require.NoError(t, err)
	assert.Len(t, orders, 0)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderService, _, notifier, testDB := setupOrderServiceTest(t)

	order, err := orderService.Checkout("user-1", CheckoutInput{
		Items: json.RawMessage(`[]`),
		Total: int64Ptr(100),
	})
	require.NoError(t, err)
	notifier.wait(t)

	err = orderService.UpdateOrderStatus(order.ID, model.OrderStatusCompleted)
	require.NoError(t, err)

	var found model.Order
	require.NoError(t, testDB.First(&found, order.ID).Error)
	assert.Equal(t, model.OrderStatusCompleted, found.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	orderService, _, _, _ := setupOrderServiceTest(t)

	err := orderService.UpdateOrderStatus(1, model.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_UpdateOrderStatus_NotFound(t *testing.T) {
	orderService, _, _, _ := setupOrderServiceTest(t)

	err := orderService.UpdateOrderStatus(9999, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
