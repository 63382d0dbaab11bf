package store

import (
	"context"

	"github.com/mkhalitov/bookshelf/models"
)

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Fails with ErrUsernameTaken or ErrEmailTaken when a
	// uniqueness invariant is violated, including by a concurrent signup.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its case-folded email.
	// Fails with ErrUserNotFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID loads the identity projection for the given id.
	// Fails with ErrUserNotFound when the account no longer exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// BookRepository persists and queries bibliographic records.
type BookRepository interface {
	// CreateBook inserts a new book owned by its submitting user. Fails
	// with ErrBookAlreadyExists when the case-insensitive (title, author)
	// pair is already present.
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)

	// ListBooks returns the filtered, enriched page of books ordered
	// newest-created first, along with the total match count.
	ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error)

	// GetBookByID loads one enriched book. Fails with ErrBookNotFound.
	GetBookByID(ctx context.Context, bookID int64) (models.Book, error)

	// SearchBooks returns the page of books matching the query by substring
	// or full text, ordered by relevance rank then newest-created first,
	// along with the total match count.
	SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error)
}

// ReviewRepository persists and queries book reviews.
type ReviewRepository interface {
	// CreateReview inserts a review and returns it annotated with the
	// submitter's username. Fails with ErrDuplicateReview when the user
	// already reviewed the book, or ErrBookNotFound when the book is gone.
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)

	// GetReviewByID loads one annotated review. Fails with
	// ErrReviewNotFound. Used as the ownership-guard read immediately
	// preceding a mutation.
	GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error)

	// ListBookReviews returns the page of annotated reviews for a book,
	// newest first, along with the total count.
	ListBookReviews(ctx context.Context, bookID int64, page models.PageRequest) ([]models.Review, int64, error)

	// UpdateReview applies a non-empty patch and refreshes updated_at.
	// Fails with ErrReviewNotFound when the review vanished between the
	// ownership read and the update.
	UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch) (models.Review, error)

	// DeleteReview hard-deletes a review and returns the removed record.
	// Fails with ErrReviewNotFound when already gone.
	DeleteReview(ctx context.Context, reviewID int64) (models.Review, error)
}
