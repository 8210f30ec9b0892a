package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/service"
	apperrors "github.com/zenwear/zen-backend/internal/errors"
	"github.com/zenwear/zen-backend/internal/middleware"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CheckoutRequest keeps Items raw and Total a pointer so that absent
// fields can be told apart from zero values.
type CheckoutRequest struct {
	UserName    string          `json:"user_name"`
	UserPhone   string          `json:"user_phone"`
	UserAddress string          `json:"user_address"`
	Items       json.RawMessage `json:"items"`
	Total       *int64          `json:"total"`
}

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// GetOrders returns the user's order history, newest first
// GET /api/orders/:userId
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID := c.Param("userId")

	orders, err := ctrl.orderService.GetUserOrders(userID)
	if err != nil {
		log.Error("Failed to fetch orders", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Checkout places an order from the submitted cart snapshot
// POST /api/orders/:userId
func (ctrl *OrderController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	userID := c.Param("userId")

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	order, err := ctrl.orderService.Checkout(userID, service.CheckoutInput{
		UserName:    req.UserName,
		UserPhone:   req.UserPhone,
		UserAddress: req.UserAddress,
		Items:       req.Items,
		Total:       req.Total,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingItems):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "items are required")
		case errors.Is(err, service.ErrMissingTotal):
			apperrors.BadRequest(c, apperrors.ValidationRequired, "total is required")
		default:
			log.Error("Checkout failed", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.InternalError(c, "Failed to place order")
		}
		return
	}

	log.Info("Order placed", map[string]interface{}{
		"user_id":  userID,
		"order_id": order.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"ok":       true,
		"order_id": order.ID,
	})
}

// UpdateOrderStatus moves an order between pending and completed
// PATCH /api/orders/order/:orderId/status
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "status is required")
		return
	}

	if err := ctrl.orderService.UpdateOrderStatus(uint(orderID), req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "status must be pending or completed")
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		default:
			log.Error("Failed to update order status", err, map[string]interface{}{
				"order_id": orderID,
			})
			apperrors.InternalError(c, "Failed to update order status")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
