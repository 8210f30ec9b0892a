package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zenwear/zen-backend/internal/app/model"
	"github.com/zenwear/zen-backend/internal/app/repository"
	"github.com/zenwear/zen-backend/pkg/logger"
)

var (
	ErrReviewNotFound = errors.New("review not found")
)

// anonymousName labels reviews and comments posted without a user name.
const anonymousName = "Guest"

type ReviewService interface {
	GetAllReviews() ([]model.Review, error)
	CreateReview(userID, userName string, rating int, text string) (*model.Review, error)
	AddComment(reviewID uint, userID, userName, text string) (*model.ReviewComment, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) GetAllReviews() ([]model.Review, error) {
	logger.Debug("Fetching all reviews", nil)

	reviews, err := s.reviewRepo.FindAllWithComments()
	if err != nil {
		logger.Error("Failed to fetch reviews", err)
		return nil, err
	}

	logger.Info("Reviews fetched successfully", map[string]interface{}{
		"count": len(reviews),
	})
	return reviews, nil
}

// CreateReview stores the review with the rating clamped into [1,5].
// A zero rating means the client omitted it and gets the default 5.
func (s *reviewService) CreateReview(userID, userName string, rating int, text string) (*model.Review, error) {
	if rating == 0 {
		rating = 5
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	if userName == "" {
		userName = anonymousName
	}

	review := &model.Review{
		UserID:   userID,
		UserName: userName,
		Rating:   rating,
		Text:     text,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		logger.Error("Failed to create review", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	logger.Info("Review created successfully", map[string]interface{}{
		"review_id": review.ID,
		"rating":    review.Rating,
	})
	return review, nil
}

// AddComment appends a comment to an existing review. Commenting on a
// review that does not exist is rejected rather than silently creating
// an orphan row.
func (s *reviewService) AddComment(reviewID uint, userID, userName, text string) (*model.ReviewComment, error) {
	if _, err := s.reviewRepo.FindByID(reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}

	if userName == "" {
		userName = anonymousName
	}

	comment := &model.ReviewComment{
		ReviewID: reviewID,
		UserID:   userID,
		UserName: userName,
		Text:     text,
	}

	if err := s.reviewRepo.CreateComment(comment); err != nil {
		logger.Error("Failed to create review comment", err, map[string]interface{}{
			"review_id": reviewID,
		})
		return nil, err
	}

	logger.Info("Review comment created successfully", map[string]interface{}{
		"comment_id": comment.ID,
		"review_id":  reviewID,
	})
	return comment, nil
}
