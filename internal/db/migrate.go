package db

import (
	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate runs database migrations. Safe to run against an existing
// database; AutoMigrate only adds what is missing.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Store{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.Review{},
		&model.ReviewComment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed inserts the default store and demo catalog, but only when the
// corresponding tables are empty.
func Seed(db *gorm.DB) error {
	if err := seedStores(db); err != nil {
		logger.Error("Failed to seed stores", err)
		return err
	}
	if err := seedProducts(db); err != nil {
		logger.Error("Failed to seed products", err)
		return err
	}
	return nil
}

func seedStores(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Stores already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	store := model.Store{
		Name:        "ZEN",
		Description: "Minimal streetwear essentials",
	}
	if err := db.Create(&store).Error; err != nil {
		return err
	}

	logger.Info("Default store seeded", map[string]interface{}{
		"store_id": store.ID,
	})
	return nil
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Products already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding demo products...")

	products := []model.Product{
		{
			StoreID:     model.DefaultStoreID,
			Name:        "Essential Tee",
			Description: "Premium basic cotton tee",
			Price:       2990,
			ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400",
			Category:    model.CategoryTee,
			Sizes:       "S,M,L,XL",
		},
		{
			StoreID:     model.DefaultStoreID,
			Name:        "Oversized Hoodie",
			Description: "Oversized hoodie in soft fleece",
			Price:       5990,
			ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400",
			Category:    model.CategoryHoodie,
			Sizes:       "S,M,L,XL",
		},
		{
			StoreID:     model.DefaultStoreID,
			Name:        "Cargo Pants",
			Description: "Wide cargo pants with utility pockets",
			Price:       4990,
			ImageURL:    "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=400",
			Category:    model.CategoryPants,
			Sizes:       "S,M,L,XL",
		},
		{
			StoreID:     model.DefaultStoreID,
			Name:        "Minimal Jacket",
			Description: "Minimalist windbreaker",
			Price:       7990,
			ImageURL:    "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=400",
			Category:    model.CategoryJacket,
			Sizes:       "S,M,L,XL",
		},
		{
			StoreID:     model.DefaultStoreID,
			Name:        "Black Cap",
			Description: "Black cap with embroidered logo",
			Price:       1990,
			ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=400",
			Category:    model.CategoryAccessories,
			Sizes:       "One size",
		},
	}

	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			logger.Error("Failed to create demo product", err, map[string]interface{}{
				"name": product.Name,
			})
			return err
		}
	}

	logger.Info("Demo products seeded successfully", map[string]interface{}{
		"total_products": len(products),
	})
	return nil
}
