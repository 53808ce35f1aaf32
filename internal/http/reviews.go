package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/entities"
	"github.com/mrlokans/bookcatalog/internal/validation"
)

// ReviewStore defines the document-store operations the reviews controller
// needs.
type ReviewStore interface {
	Insert(ctx context.Context, review *entities.Review) error
	ListByBook(ctx context.Context, bookID int) ([]entities.Review, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type ReviewsController struct {
	store        ReviewStore
	auditService *audit.Service
}

func NewReviewsController(store ReviewStore, auditService *audit.Service) *ReviewsController {
	return &ReviewsController{store: store, auditService: auditService}
}

// ListReviews returns the reviews for one book, newest first. A book with no
// reviews yields an empty list, not an error; nothing checks whether the book
// itself exists.
// GET /api/reviews?book_id=
func (ctrl *ReviewsController) ListReviews(c *gin.Context) {
	raw := c.Query("book_id")
	if raw == "" {
		ctrl.logFailure(c, "list reviews rejected", errors.New("book_id is required"))
		respondBadRequest(c, "book_id is required")
		return
	}
	bookID, err := strconv.Atoi(raw)
	if err != nil {
		ctrl.logFailure(c, "list reviews rejected", errors.New("book_id must be an integer"))
		respondBadRequest(c, "book_id must be an integer")
		return
	}

	reviews, err := ctrl.store.ListByBook(c.Request.Context(), bookID)
	if err != nil {
		ctrl.logFailure(c, "list reviews failed", err)
		respondStorageError(c, err, "list reviews")
		return
	}

	ctrl.logSuccess(c, "listed reviews", fmt.Sprintf("book_id=%d, %d reviews", bookID, len(reviews)))
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// AddReview creates a review. The referenced book is not required to exist.
// POST /api/reviews
func (ctrl *ReviewsController) AddReview(c *gin.Context) {
	var payload validation.ReviewPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		ctrl.logFailure(c, "add review rejected", err)
		respondBadRequest(c, "invalid JSON body")
		return
	}

	record, err := validation.NewReview(payload)
	if err != nil {
		ctrl.logFailure(c, "add review rejected", err)
		respondBadRequest(c, err.Error())
		return
	}

	review := &entities.Review{
		BookID:     record.BookID,
		Username:   record.Username,
		Rating:     record.Rating,
		ReviewText: record.ReviewText,
	}
	if err := ctrl.store.Insert(c.Request.Context(), review); err != nil {
		ctrl.logFailure(c, "add review failed", err)
		respondStorageError(c, err, "add review")
		return
	}

	ctrl.logSuccess(c, "review added", fmt.Sprintf("book_id=%d by %s", review.BookID, review.Username))
	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added successfully",
		"review":  review,
	})
}

// DeleteReview removes a review by its document id.
// DELETE /api/reviews/:id
func (ctrl *ReviewsController) DeleteReview(c *gin.Context) {
	id, err := validation.ReviewID(c.Param("id"))
	if err != nil {
		ctrl.logFailure(c, "delete review rejected", err)
		respondBadRequest(c, err.Error())
		return
	}

	deleted, err := ctrl.store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		ctrl.logFailure(c, "delete review failed", err)
		respondStorageError(c, err, "delete review")
		return
	}
	if !deleted {
		ctrl.logFailure(c, "delete review missed", nil)
		respondNotFound(c, "review")
		return
	}

	ctrl.logSuccess(c, "review deleted", id.Hex())
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (ctrl *ReviewsController) logSuccess(c *gin.Context, message, details string) {
	if ctrl.auditService == nil {
		return
	}
	ctrl.auditService.LogSuccess(GetRequestID(c), message, details)
}

func (ctrl *ReviewsController) logFailure(c *gin.Context, message string, err error) {
	if ctrl.auditService == nil {
		return
	}
	ctrl.auditService.LogFailure(GetRequestID(c), message, err)
}
