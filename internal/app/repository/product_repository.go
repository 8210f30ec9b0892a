package repository

import (
	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByStoreID(storeID uint) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(id uint) (int64, error)
	ReassignStore(fromStoreID, toStoreID uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	logger.Debug("Creating product in database", map[string]interface{}{
		"name":     product.Name,
		"store_id": product.StoreID,
		"price":    product.Price,
	})

	if err := r.db.Create(product).Error; err != nil {
		logger.Error("Failed to create product in database", err, map[string]interface{}{
			"name": product.Name,
		})
		return err
	}

	logger.Debug("Product created in database", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

func (r *productRepository) FindAll() ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		logger.Error("Failed to find products in database", err)
		return nil, err
	}

	logger.Debug("Products found in database", map[string]interface{}{
		"count": len(products),
	})
	return products, nil
}

func (r *productRepository) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, id).Error; err != nil {
		logger.Error("Failed to find product by ID in database", err, map[string]interface{}{
			"product_id": id,
		})
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByStoreID(storeID uint) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.Where("store_id = ?", storeID).Order("id").Find(&products).Error; err != nil {
		logger.Error("Failed to find products by store ID in database", err, map[string]interface{}{
			"store_id": storeID,
		})
		return nil, err
	}

	logger.Debug("Products found by store ID in database", map[string]interface{}{
		"store_id": storeID,
		"count":    len(products),
	})
	return products, nil
}

func (r *productRepository) Update(product *model.Product) error {
	logger.Debug("Updating product in database", map[string]interface{}{
		"product_id": product.ID,
	})

	if err := r.db.Save(product).Error; err != nil {
		logger.Error("Failed to update product in database", err, map[string]interface{}{
			"product_id": product.ID,
		})
		return err
	}
	return nil
}

func (r *productRepository) Delete(id uint) (int64, error) {
	logger.Debug("Deleting product from database", map[string]interface{}{
		"product_id": id,
	})

	result := r.db.Delete(&model.Product{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete product from database", result.Error, map[string]interface{}{
			"product_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReassignStore moves every product of one store to another. Used when a
// store is deleted so that products are never deleted with it.
func (r *productRepository) ReassignStore(fromStoreID, toStoreID uint) error {
	logger.Debug("Reassigning products to fallback store", map[string]interface{}{
		"from_store_id": fromStoreID,
		"to_store_id":   toStoreID,
	})

	if err := r.db.Model(&model.Product{}).
		Where("store_id = ?", fromStoreID).
		Update("store_id", toStoreID).Error; err != nil {
		logger.Error("Failed to reassign products", err, map[string]interface{}{
			"from_store_id": fromStoreID,
			"to_store_id":   toStoreID,
		})
		return err
	}
	return nil
}
