package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/internal/app/service"
	"github.com/zenwear/zen-backend/internal/db"
)

func setupCartControllerTest(t *testing.T) (*gin.Engine, *model.Product, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	cartRepo := repository.NewCartRepository(testDB)
	cartService := service.NewCartService(cartRepo)
	cartController := NewCartController(cartService)

	store := &model.Store{Name: "Test Store"}
	testDB.Create(store)

	product := &model.Product{
		StoreID:  store.ID,
		Name:     "Test Tee",
		Price:    2990,
		Category: model.CategoryTee,
		Sizes:    "S,M,L",
	}
	testDB.Create(product)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cart/:userId", cartController.GetCart)
	router.POST("/cart/:userId", cartController.AddToCart)
	router.DELETE("/cart/:userId/:itemId", cartController.RemoveFromCart)

	return router, product, testDB
}

func TestCartController_GetCart_Empty(t *testing.T) {
	router, _, _ := setupCartControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/cart/user-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []model.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 0)
}

func TestCartController_AddToCart_Success(t *testing.T) {
	router, product, _ := setupCartControllerTest(t)

	body := fmt.Sprintf(`{"product_id":%d,"size":"M","quantity":2}`, product.ID)
	req := httptest.NewRequest(http.MethodPost, "/cart/user-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	// Joined cart carries the live product
	req = httptest.NewRequest(http.MethodGet, "/cart/user-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var items []model.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Test Tee", items[0].Product.Name)
}

func TestCartController_AddToCart_MissingFields(t *testing.T) {
	router, _, _ := setupCartControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/cart/user-1", bytes.NewBufferString(`{"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartController_RemoveFromCart(t *testing.T) {
	router, product, _ := setupCartControllerTest(t)

	body := fmt.Sprintf(`{"product_id":%d,"size":"S"}`, product.ID)
	req := httptest.NewRequest(http.MethodPost, "/cart/user-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/cart/user-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var items []model.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/user-1/%d", items[0].ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartController_RemoveFromCart_WrongOwner(t *testing.T) {
	router, product, _ := setupCartControllerTest(t)

	body := fmt.Sprintf(`{"product_id":%d,"size":"S"}`, product.ID)
	req := httptest.NewRequest(http.MethodPost, "/cart/user-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/cart/user-1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var items []model.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)

	// Someone else's item id looks like a missing row
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/cart/user-2/%d", items[0].ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartController_RemoveFromCart_InvalidID(t *testing.T) {
	router, _, _ := setupCartControllerTest(t)

	req := httptest.NewRequest(http.MethodDelete, "/cart/user-1/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
