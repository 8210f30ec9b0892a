package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/internal/db"
)

func setupCartServiceTest(t *testing.T) (CartService, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	cartService := NewCartService(cartRepo)

	store := &model.Store{Name: "Test Store"}
	testDB.Create(store)

	product := &model.Product{
		StoreID:  store.ID,
		Name:     "Test Hoodie",
		Price:    5990,
		Category: model.CategoryHoodie,
		Sizes:    "S,M,L,XL",
	}
	testDB.Create(product)

	return cartService, product, testDB
}

func TestCartService_GetUserCart(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	// Initially empty
	items, err := cartService.GetUserCart("user-1")
	assert.NoError(t, err)
	assert.Len(t, items, 0)

	err = cartService.AddToCart("user-1", product.ID, "M", 2)
	require.NoError(t, err)

	items, err = cartService.GetUserCart("user-1")
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Test Hoodie", items[0].Product.Name)
}

func TestCartService_AddToCart_DefaultsQuantity(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	err := cartService.AddToCart("user-1", product.ID, "S", 0)
	require.NoError(t, err)

	items, _ := cartService.GetUserCart("user-1")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCartService_AddToCart_UnknownProductAccepted(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	// The cart does not validate against the catalog
	err := cartService.AddToCart("user-1", 9999, "M", 1)
	assert.NoError(t, err)
}

func TestCartService_AddToCart_RepeatedAddsAccumulateRows(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", product.ID, "M", 1))
	require.NoError(t, cartService.AddToCart("user-1", product.ID, "M", 1))

	items, _ := cartService.GetUserCart("user-1")
	assert.Len(t, items, 2)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", product.ID, "M", 1))
	items, _ := cartService.GetUserCart("user-1")
	require.Len(t, items, 1)

	err := cartService.RemoveFromCart("user-1", items[0].ID)
	assert.NoError(t, err)

	items, _ = cartService.GetUserCart("user-1")
	assert.Len(t, items, 0)
}

func TestCartService_RemoveFromCart_WrongOwner(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", product.ID, "M", 1))
	items, _ := cartService.GetUserCart("user-1")
	require.Len(t, items, 1)

	err := cartService.RemoveFromCart("user-2", items[0].ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	// Row survives
	items, _ = cartService.GetUserCart("user-1")
	assert.Len(t, items, 1)
}

func TestCartService_RemoveFromCart_NotFound(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	err := cartService.RemoveFromCart("user-1", 9999)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	cartService, product, _ := setupCartServiceTest(t)

	require.NoError(t, cartService.AddToCart("user-1", product.ID, "S", 1))
	require.NoError(t, cartService.AddToCart("user-1", product.ID, "M", 2))

	err := cartService.ClearCart("user-1")
	assert.NoError(t, err)

	items, _ := cartService.GetUserCart("user-1")
	assert.Len(t, items, 0)
}

func TestCartService_ClearCart_EmptyIsNoOp(t *testing.T) {
	cartService, _, _ := setupCartServiceTest(t)

	err := cartService.ClearCart("nobody")
	assert.NoError(t, err)
}
