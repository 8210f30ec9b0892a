package repository

import (
	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/pkg/logger"
	"gorm.io/gorm"
)

type StoreRepository interface {
	Create(store *model.Store) error
	FindAll() ([]model.Store, error)
	FindByID(id uint) (*model.Store, error)
	FindFirstExcluding(id uint) (*model.Store, error)
	Update(store *model.Store) error
	Delete(id uint) (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	logger.Debug("Creating store in database", map[string]interface{}{
		"name": store.Name,
	})

	if err := r.db.Create(store).Error; err != nil {
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name": store.Name,
		})
		return err
	}

	logger.Debug("Store created in database", map[string]interface{}{
		"store_id": store.ID,
		"name":     store.Name,
	})
	return nil
}

func (r *storeRepository) FindAll() ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.Order("id").Find(&stores).Error; err != nil {
		logger.Error("Failed to find stores in database", err)
		return nil, err
	}

	logger.Debug("Stores found in database", map[string]interface{}{
		"count": len(stores),
	})
	return stores, nil
}

func (r *storeRepository) FindByID(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.First(&store, id).Error; err != nil {
		logger.Error("Failed to find store by ID in database", err, map[string]interface{}{
			"store_id": id,
		})
		return nil, err
	}
	return &store, nil
}

// FindFirstExcluding returns the lowest-id store other than the given
// one; gorm.ErrRecordNotFound when no other store exists.
func (r *storeRepository) FindFirstExcluding(id uint) (*model.Store, error) {
	var store model.Store
	if err := r.db.Where("id != ?", id).Order("id").First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) Update(store *model.Store) error {
	logger.Debug("Updating store in database", map[string]interface{}{
		"store_id": store.ID,
	})

	if err := r.db.Save(store).Error; err != nil {
		logger.Error("Failed to update store in database", err, map[string]interface{}{
			"store_id": store.ID,
		})
		return err
	}
	return nil
}

func (r *storeRepository) Delete(id uint) (int64, error) {
	logger.Debug("Deleting store from database", map[string]interface{}{
		"store_id": id,
	})

	result := r.db.Delete(&model.Store{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete store from database", result.Error, map[string]interface{}{
			"store_id": id,
		})
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
