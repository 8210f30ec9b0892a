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

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Text     string `json:"text" binding:"required"`
}

type CreateCommentRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	UserName string `json:"user_name"`
	Text     string `json:"text" binding:"required"`
}

// GetReviews lists all reviews with their comments
// GET /api/reviews
func (ctrl *ReviewController) GetReviews(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reviews, err := ctrl.reviewService.GetAllReviews()
	if err != nil {
		log.Error("Failed to fetch reviews", err)
		apperrors.InternalError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview posts a new review
// POST /api/reviews
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create-review request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "user_id and text are required")
		return
	}

	review, err := ctrl.reviewService.CreateReview(req.UserID, req.UserName, req.Rating, req.Text)
	if err != nil {
		log.Error("Failed to create review", err, map[string]interface{}{
			"user_id": req.UserID,
		})
		apperrors.RespondWithStorageError(c, err, "review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"id": review.ID,
	})
}

// CreateComment appends a comment to a review
// POST /api/reviews/:reviewId/comments
func (ctrl *ReviewController) CreateComment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	reviewID, err := strconv.ParseUint(c.Param("reviewId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid review ID")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "user_id and text are required")
		return
	}

	comment, err := ctrl.reviewService.AddComment(uint(reviewID), req.UserID, req.UserName, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
			return
		}
		log.Error("Failed to create review comment", err, map[string]interface{}{
			"review_id": reviewID,
		})
		apperrors.InternalError(c, "Failed to create comment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"id": comment.ID,
	})
}
