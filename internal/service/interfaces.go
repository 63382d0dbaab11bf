package service

import (
	"context"

	"github.com/mkhalitov/bookshelf/models"
)

// AuthService covers the credential lifecycle: account registration, login,
// token issue/verification, and the per-request identity resolution applied
// after token verification.
type AuthService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveUser loads the acting user for a verified token. A vanished
	// account surfaces as store.ErrUserNotFound, which the transport layer
	// treats as an authentication failure rather than a missing resource.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)
}

// BookService covers bibliographic records: submission, filtered listing,
// detail with paginated reviews, and text search.
type BookService interface {
	AddBook(ctx context.Context, request models.CreateBookRequest, actingUserID int64) (models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error)
	GetBook(ctx context.Context, bookID int64, page models.PageRequest) (models.Book, []models.Review, int64, error)
	SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error)
}

// ReviewService covers review submission and the ownership-gated mutations.
type ReviewService interface {
	AddReview(ctx context.Context, bookID int64, request models.CreateReviewRequest, actingUserID int64) (models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch, actingUserID int64) (models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64, actingUserID int64) (models.Review, error)
}
