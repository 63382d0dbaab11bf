package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. Reads join the "users" table so that every returned
// review carries the reviewing user's username.
type reviewRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReviewRepository constructs a [ReviewRepository] backed by the provided
// database connection and logger.
func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReview persists a review via the [createReview] CTE, which inserts
// and annotates the record with the submitter's username in one statement.
//
// Error handling:
//   - unique_violation (23505) on (book_id, user_id) → [ErrDuplicateReview].
//     The constraint is the authoritative duplicate check, so a review
//     racing another from the same user surfaces exactly one Conflict.
//   - foreign_key_violation (23503) on book_id → [ErrBookNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createReview, review.BookID, review.UserID, review.Rating, review.Comment)

	if err := row.Err(); err != nil {
		return models.Review{}, r.mapCreateError(ctx, err)
	}

	if err := row.Scan(
		&review.ReviewID, &review.BookID, &review.UserID, &review.Username,
		&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		// QueryRowContext defers driver errors until Scan, so constraint
		// violations can surface here as well.
		if code := postgresErrorCode(err); code == pgerrcode.UniqueViolation || code == pgerrcode.ForeignKeyViolation {
			return models.Review{}, r.mapCreateError(ctx, err)
		}

		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error: scanning error")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}

func (r *reviewRepository) mapCreateError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	switch postgresErrorCode(err) {
	case pgerrcode.UniqueViolation:
		return ErrDuplicateReview
	case pgerrcode.ForeignKeyViolation:
		if postgresConstraint(err) == constraintReviewBookFK {
			return ErrBookNotFound
		}
		return ErrUserNotFound
	}

	log.Err(err).
		Str("func", "*reviewRepository.CreateReview").
		Str("classification", r.db.errorClassifier.Classify(err).String()).
		Msg("error: review insert failed")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// GetReviewByID loads one annotated review. This is the ownership-guard
// read: the service runs it immediately before every mutation, with no
// caching of prior results.
//
// Error handling:
//   - No matching row → [ErrReviewNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *reviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	row := r.db.QueryRowContext(ctx, getReviewByID, reviewID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.GetReviewByID").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Int64("review_id", reviewID).
			Msg("error: review lookup failed")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&review.ReviewID, &review.BookID, &review.UserID, &review.Username,
		&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.GetReviewByID").Msg("error: scanning error")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}

// ListBookReviews returns the page of annotated reviews for a book, newest
// first, and the total review count for the book.
func (r *reviewRepository) ListBookReviews(ctx context.Context, bookID int64, page models.PageRequest) ([]models.Review, int64, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookReviews, bookID, page.Limit, page.Offset)
	if err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.ListBookReviews").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Int64("book_id", bookID).
			Msg("failed to execute review listing query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0, 10)

	for rows.Next() {
		var review models.Review

		if scanErr := rows.Scan(
			&review.ReviewID, &review.BookID, &review.UserID, &review.Username,
			&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "*reviewRepository.ListBookReviews").Msg("failed to scan review row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		reviews = append(reviews, review)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*reviewRepository.ListBookReviews").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countBookReviews, bookID).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.ListBookReviews").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Msg("failed to execute review count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return reviews, total, nil
}

// UpdateReview applies the patch built by [buildUpdateReviewQuery]: only
// supplied fields change, updated_at is always refreshed.
//
// The returned review does not carry a username; the caller merges it from
// the ownership-guard read that immediately preceded this call.
//
// Error handling:
//   - No matching row → [ErrReviewNotFound] (the review was deleted between
//     the ownership read and this update — acceptable race semantics).
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *reviewRepository) UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch) (models.Review, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateReviewQuery(reviewID, patch)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("failed to build query")
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var review models.Review
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.UpdateReview").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Int64("review_id", reviewID).
			Msg("error: review update failed")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&review.ReviewID, &review.BookID, &review.UserID,
		&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.UpdateReview").Msg("error: scanning error")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}

// DeleteReview hard-deletes a review and returns the removed record via the
// RETURNING clause. Like [UpdateReview], the result carries no username;
// the caller merges it from the preceding ownership read.
//
// Error handling mirrors [reviewRepository.UpdateReview].
func (r *reviewRepository) DeleteReview(ctx context.Context, reviewID int64) (models.Review, error) {
	log := logger.FromContext(ctx)

	var review models.Review
	row := r.db.QueryRowContext(ctx, deleteReview, reviewID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*reviewRepository.DeleteReview").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Int64("review_id", reviewID).
			Msg("error: review delete failed")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&review.ReviewID, &review.BookID, &review.UserID,
		&review.Rating, &review.Comment, &review.CreatedAt, &review.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Review{}, ErrReviewNotFound
		}

		log.Err(err).Str("func", "*reviewRepository.DeleteReview").Msg("error: scanning error")
		return models.Review{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return review, nil
}
