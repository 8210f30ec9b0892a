package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zenwear/zen-backend/internal/app/service"
	apperrors "github.com/zenwear/zen-backend/internal/errors"
	"github.com/zenwear/zen-backend/internal/middleware"
)

type StoreController struct {
	storeService   service.StoreService
	productService service.ProductService
}

func NewStoreController(storeService service.StoreService, productService service.ProductService) *StoreController {
	return &StoreController{
		storeService:   storeService,
		productService: productService,
	}
}

type CreateStoreRequest struct {
	Name        string `json:"name" binding:"required"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	ImageURL    *string `json:"image_url"`
	Description *string `json:"description"`
}

// GetStores lists all stores
// GET /api/stores
func (ctrl *StoreController) GetStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stores, err := ctrl.storeService.GetAllStores()
	if err != nil {
		log.Error("Failed to fetch stores", err)
		apperrors.InternalError(c, "Failed to fetch stores")
		return
	}

	c.JSON(http.StatusOK, stores)
}

// GetStoreProducts lists the products of one store
// GET /api/stores/:id/products
func (ctrl *StoreController) GetStoreProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid store ID")
		return
	}

	products, err := ctrl.productService.GetProductsByStore(uint(id))
	if err != nil {
		log.Error("Failed to fetch store products", err, map[string]interface{}{
			"store_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch store products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateStore adds a store
// POST /api/stores (admin)
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create-store request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name is required")
		return
	}

	store, err := ctrl.storeService.CreateStore(service.StoreInput{
		Name:        &req.Name,
		ImageURL:    &req.ImageURL,
		Description: &req.Description,
	})
	if err != nil {
		log.Error("Failed to create store", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.RespondWithStorageError(c, err, "store")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"id": store.ID,
	})
}

// UpdateStore partially updates a store
// PATCH /api/stores/:id (admin)
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid store ID")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	if _, err := ctrl.storeService.UpdateStore(uint(id), service.StoreInput(req)); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
			return
		}
		log.Error("Failed to update store", err, map[string]interface{}{
			"store_id": id,
		})
		apperrors.RespondWithStorageError(c, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteStore removes a store, rehoming its products
// DELETE /api/stores/:id (admin)
func (ctrl *StoreController) DeleteStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid store ID")
		return
	}

	if err := ctrl.storeService.DeleteStore(uint(id)); err != nil {
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
			return
		}
		log.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": id,
		})
		apperrors.InternalError(c, "Failed to delete store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
