package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductInput carries catalog writes. Pointer fields distinguish an
// omitted field from a zero so that partial updates leave the rest of
// the row alone.
type ProductInput struct {
	StoreID     *uint
	Name        *string
	Description *string
	Price       *int64
	ImageURL    *string
	Category    *model.ProductCategory
	Sizes       *string
}

type ProductService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	GetProductsByStore(storeID uint) ([]model.Product, error)
	CreateProduct(input ProductInput) (*model.Product, error)
	UpdateProduct(id uint, input ProductInput) (*model.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAllProducts() ([]model.Product, error) {
	logger.Debug("Fetching all products", nil)

	products, err := s.productRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch products", err)
		return nil, err
	}

	logger.Info("Products fetched successfully", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProductsByStore(storeID uint) ([]model.Product, error) {
	logger.Debug("Fetching products by store", map[string]interface{}{
		"store_id": storeID,
	})

	products, err := s.productRepo.FindByStoreID(storeID)
	if err != nil {
		logger.Error("Failed to fetch products by store", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}
	return products, nil
}

func (s *productService) CreateProduct(input ProductInput) (*model.Product, error) {
	product := &model.Product{
		StoreID: model.DefaultStoreID,
	}
	applyProductInput(product, input)

	logger.Info("Creating product", map[string]interface{}{
		"name":     product.Name,
		"store_id": product.StoreID,
	})

	if err := s.productRepo.Create(product); err != nil {
		logger.Error("Failed to create product", err, map[string]interface{}{
			"name": product.Name,
		})
		return nil, err
	}

	logger.Info("Product created successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

func (s *productService) UpdateProduct(id uint, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	applyProductInput(product, input)

	if err := s.productRepo.Update(product); err != nil {
		logger.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}

	logger.Info("Product updated successfully", map[string]interface{}{
		"product_id": product.ID,
	})
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	affected, err := s.productRepo.Delete(id)
	if err != nil {
		logger.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	logger.Info("Product deleted successfully", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func applyProductInput(product *model.Product, input ProductInput) {
	if input.StoreID != nil {
		product.StoreID = *input.StoreID
	}
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
}
