package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/service"
	apperrors "github.com/zenwear/zen-backend/internal/errors"
	"github.com/zenwear/zen-backend/internal/middleware"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

type CreateProductRequest struct {
	StoreID     *uint                  `json:"store_id"`
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description"`
	Price       int64                  `json:"price" binding:"min=0"`
	ImageURL    string                 `json:"image_url"`
	Category    model.ProductCategory  `json:"category"`
	Sizes       string                 `json:"sizes"`
}

type UpdateProductRequest struct {
	StoreID     *uint                  `json:"store_id"`
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Price       *int64                 `json:"price"`
	ImageURL    *string                `json:"image_url"`
	Category    *model.ProductCategory `json:"category"`
	Sizes       *string                `json:"sizes"`
}

// GetProducts returns the full catalog
// GET /api/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.GetAllProducts()
	if err != nil {
		log.Error("Failed to fetch products", err)
		apperrors.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID returns one product
// GET /api/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a product to the catalog
// POST /api/products (admin)
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create-product request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "name is required and price must not be negative")
		return
	}

	product, err := ctrl.productService.CreateProduct(service.ProductInput{
		StoreID:     req.StoreID,
		Name:        &req.Name,
		Description: &req.Description,
		Price:       &req.Price,
		ImageURL:    &req.ImageURL,
		Category:    &req.Category,
		Sizes:       &req.Sizes,
	})
	if err != nil {
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.RespondWithStorageError(c, err, "product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"id": product.ID,
	})
}

// UpdateProduct partially updates a product
// PATCH /api/products/:id (admin)
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body")
		return
	}

	if _, err := ctrl.productService.UpdateProduct(uint(id), service.ProductInput(req)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.RespondWithStorageError(c, err, "product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteProduct removes a product from the catalog
// DELETE /api/products/:id (admin)
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	if err := ctrl.productService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
