package repository

import (
	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/pkg/logger"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindAllWithComments() ([]model.Review, error)
	CreateComment(comment *model.ReviewComment) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	logger.Debug("Creating review in database", map[string]interface{}{
		"user_id": review.UserID,
		"rating":  review.Rating,
	})

	if err := r.db.Create(review).Error; err != nil {
		logger.Error("Failed to create review in database", err, map[string]interface{}{
			"user_id": review.UserID,
		})
		return err
	}

	logger.Debug("Review created in database", map[string]interface{}{
		"review_id": review.ID,
	})
	return nil
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		logger.Error("Failed to find review by ID in database", err, map[string]interface{}{
			"review_id": id,
		})
		return nil, err
	}
	return &review, nil
}

// FindAllWithComments returns reviews newest-first, each with its
// comments oldest-first.
func (r *reviewRepository) FindAllWithComments() ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		logger.Error("Failed to find reviews in database", err)
		return nil, err
	}

	logger.Debug("Reviews found in database", map[string]interface{}{
		"count": len(reviews),
	})
	return reviews, nil
}

func (r *reviewRepository) CreateComment(comment *model.ReviewComment) error {
	logger.Debug("Creating review comment in database", map[string]interface{}{
		"review_id": comment.ReviewID,
		"user_id":   comment.UserID,
	})

	if err := r.db.Create(comment).Error; err != nil {
		logger.Error("Failed to create review comment in database", err, map[string]interface{}{
			"review_id": comment.ReviewID,
		})
		return err
	}

	logger.Debug("Review comment created in database", map[string]interface{}{
		"comment_id": comment.ID,
		"review_id":  comment.ReviewID,
	})
	return nil
}
