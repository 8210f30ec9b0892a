package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/pkg/logger"
)

var (
	ErrStoreNotFound = errors.New("store not found")
)

type StoreInput struct {
	Name        *string
	ImageURL    *string
	Description *string
}

type StoreService interface {
	GetAllStores() ([]model.Store, error)
	GetStoreByID(id uint) (*model.Store, error)
	CreateStore(input StoreInput) (*model.Store, error)
	UpdateStore(id uint, input StoreInput) (*model.Store, error)
	DeleteStore(id uint) error
}

type storeService struct {
	db        *gorm.DB
	storeRepo repository.StoreRepository
}

func NewStoreService(db *gorm.DB, storeRepo repository.StoreRepository) StoreService {
	return &storeService{db: db, storeRepo: storeRepo}
}

func (s *storeService) GetAllStores() ([]model.Store, error) {
	logger.Debug("Fetching all stores", nil)

	stores, err := s.storeRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch stores", err)
		return nil, err
	}

	logger.Info("Stores fetched successfully", map[string]interface{}{
		"count": len(stores),
	})
	return stores, nil
}

func (s *storeService) GetStoreByID(id uint) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) CreateStore(input StoreInput) (*model.Store, error) {
	store := &model.Store{}
	applyStoreInput(store, input)

	logger.Info("Creating store", map[string]interface{}{
		"name": store.Name,
	})

	if err := s.storeRepo.Create(store); err != nil {
		logger.Error("Failed to create store", err, map[string]interface{}{
			"name": store.Name,
		})
		return nil, err
	}

	logger.Info("Store created successfully", map[string]interface{}{
		"store_id": store.ID,
	})
	return store, nil
}

func (s *storeService) UpdateStore(id uint, input StoreInput) (*model.Store, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	applyStoreInput(store, input)

	if err := s.storeRepo.Update(store); err != nil {
		logger.Error("Failed to update store", err, map[string]interface{}{
			"store_id": id,
		})
		return nil, err
	}

	logger.Info("Store updated successfully", map[string]interface{}{
		"store_id": store.ID,
	})
	return store, nil
}

// DeleteStore removes the store and rehomes its products in one
// transaction. Products move to the lowest-id surviving store; when the
// deleted store was the last one, they fall back to DefaultStoreID so
// they stay resolvable once a store with that id exists again.
func (s *storeService) DeleteStore(id uint) error {
	logger.Info("Deleting store", map[string]interface{}{
		"store_id": id,
	})

	if _, err := s.storeRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStoreNotFound
		}
		return err
	}

	fallbackID := model.DefaultStoreID
	fallback, err := s.storeRepo.FindFirstExcluding(id)
	switch {
	case err == nil:
		fallbackID = fallback.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Last store standing, keep the sentinel fallback.
	default:
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txProducts := repository.NewProductRepository(tx)
		if err := txProducts.ReassignStore(id, fallbackID); err != nil {
			return err
		}
		affected, err := repository.NewStoreRepository(tx).Delete(id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrStoreNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return err
		}
		logger.Error("Failed to delete store", err, map[string]interface{}{
			"store_id": id,
		})
		return err
	}

	logger.Info("Store deleted successfully", map[string]interface{}{
		"store_id":          id,
		"fallback_store_id": fallbackID,
	})
	return nil
}

func applyStoreInput(store *model.Store, input StoreInput) {
	if input.Name != nil {
		store.Name = *input.Name
	}
	if input.ImageURL != nil {
		store.ImageURL = *input.ImageURL
	}
	if input.Description != nil {
		store.Description = *input.Description
	}
}
