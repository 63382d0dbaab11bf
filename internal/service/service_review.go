package service

import (
	"context"
	"fmt"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/store"
	"github.com/mkhalitov/bookshelf/models"
)

// reviewService is the concrete implementation of ReviewService. Mutations
// are gated by an ownership read executed immediately before the UPDATE or
// DELETE statement; no prior result is cached or reused.
type reviewService struct {
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// AddReview persists a new review by the acting user on the given book and
// returns it annotated with the submitter's username.
//
// The one-review-per-(book, user) invariant and the book's existence are
// enforced by the repository (store.ErrDuplicateReview, store.ErrBookNotFound),
// including against concurrent submissions.
func (r *reviewService) AddReview(ctx context.Context, bookID int64, request models.CreateReviewRequest, actingUserID int64) (models.Review, error) {
	review := models.Review{
		BookID:  bookID,
		UserID:  actingUserID,
		Rating:  request.Rating,
		Comment: request.Comment,
	}

	createdReview, err := r.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("book_id", bookID).Msg("review creation ended with error")
		return models.Review{}, fmt.Errorf("review creation ended with error: %w", err)
	}

	return createdReview, nil
}

// UpdateReview applies a partial update to the acting user's own review:
// only supplied fields change, and the update timestamp is always refreshed.
//
// Fails with ErrEmptyReviewPatch when neither field is supplied,
// store.ErrReviewNotFound when the review does not exist, and
// ErrNotReviewOwner when it belongs to someone else. A delete racing this
// update may surface as not-found on either side.
func (r *reviewService) UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch, actingUserID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		log.Info().Int64("id", reviewID).Msg("empty review patch")
		return models.Review{}, ErrEmptyReviewPatch
	}

	guarded, err := r.checkOwnership(ctx, reviewID, actingUserID)
	if err != nil {
		return models.Review{}, err
	}

	updatedReview, err := r.reviewRepository.UpdateReview(ctx, reviewID, patch)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review update ended with error")
		return models.Review{}, fmt.Errorf("review update ended with error: %w", err)
	}

	// UPDATE ... RETURNING does not join users; the username comes from
	// the ownership read.
	updatedReview.Username = guarded.Username

	return updatedReview, nil
}

// DeleteReview hard-deletes the acting user's own review and returns the
// removed record for confirmation. Same ownership semantics as UpdateReview.
func (r *reviewService) DeleteReview(ctx context.Context, reviewID int64, actingUserID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	guarded, err := r.checkOwnership(ctx, reviewID, actingUserID)
	if err != nil {
		return models.Review{}, err
	}

	deletedReview, err := r.reviewRepository.DeleteReview(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("review deletion ended with error")
		return models.Review{}, fmt.Errorf("review deletion ended with error: %w", err)
	}

	deletedReview.Username = guarded.Username

	return deletedReview, nil
}

// checkOwnership loads the review and confirms the acting user owns it.
// Distinguishes a missing review (store.ErrReviewNotFound, wrapped) from one
// owned by another user (ErrNotReviewOwner).
func (r *reviewService) checkOwnership(ctx context.Context, reviewID int64, actingUserID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	review, err := r.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		log.Err(err).Int64("id", reviewID).Msg("ownership check ended with error")
		return models.Review{}, fmt.Errorf("ownership check ended with error: %w", err)
	}

	if review.UserID != actingUserID {
		log.Info().Int64("id", reviewID).Int64("owner", review.UserID).Int64("acting", actingUserID).Msg("review mutation by non-owner rejected")
		return models.Review{}, ErrNotReviewOwner
	}

	return review, nil
}
