package service

import (
	"errors"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/pkg/logger"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService interface {
	GetUserCart(userID string) ([]model.CartItem, error)
	AddToCart(userID string, productID uint, size string, quantity int) error
	RemoveFromCart(userID string, cartItemID uint) error
	ClearCart(userID string) error
}

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

// GetUserCart returns the user's cart rows joined with current product
// data. Product fields reflect the catalog as it is now, not as it was
// at add time. Unknown users get an empty slice.
func (s *cartService) GetUserCart(userID string) ([]model.CartItem, error) {
	logger.Debug("Fetching user cart", map[string]interface{}{
		"user_id": userID,
	})

	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("User cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(cartItems),
	})
	return cartItems, nil
}

// AddToCart inserts a new cart row. The product id and size are taken
// on faith: no check that the product exists or that the size is among
// its declared labels. Repeated adds create new rows rather than
// incrementing an existing one.
func (s *cartService) AddToCart(userID string, productID uint, size string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	logger.Info("Adding item to cart", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
		"size":       size,
		"quantity":   quantity,
	})

	cartItem := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	}

	if err := s.cartRepo.Create(cartItem); err != nil {
		logger.Error("Failed to create cart item", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return err
	}

	logger.Info("Cart item added successfully", map[string]interface{}{
		"cart_item_id": cartItem.ID,
	})
	return nil
}

// RemoveFromCart deletes one row, scoped by both item id and owner.
// A row owned by someone else looks exactly like a missing row.
func (s *cartService) RemoveFromCart(userID string, cartItemID uint) error {
	logger.Info("Removing cart item", map[string]interface{}{
		"user_id":      userID,
		"cart_item_id": cartItemID,
	})

	affected, err := s.cartRepo.DeleteByIDAndUser(cartItemID, userID)
	if err != nil {
		logger.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return err
	}
	if affected == 0 {
		logger.Warn("Cart item not found for removal", map[string]interface{}{
			"user_id":      userID,
			"cart_item_id": cartItemID,
		})
		return ErrCartItemNotFound
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"cart_item_id": cartItemID,
	})
	return nil
}

// ClearCart removes every row for the user. Clearing an empty cart is a
// no-op success.
func (s *cartService) ClearCart(userID string) error {
	logger.Info("Clearing user cart", map[string]interface{}{
		"user_id": userID,
	})

	if err := s.cartRepo.DeleteByUserID(userID); err != nil {
		logger.Error("Failed to clear cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("User cart cleared", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
