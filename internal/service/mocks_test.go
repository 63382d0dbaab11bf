package service

import (
	"context"
	"errors"

	"github.com/mkhalitov/bookshelf/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.BookRepository
// ─────────────────────────────────────────────

type mockBookRepository struct {
	createBookFn  func(ctx context.Context, book models.Book) (models.Book, error)
	listBooksFn   func(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error)
	getBookByIDFn func(ctx context.Context, bookID int64) (models.Book, error)
	searchBooksFn func(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error)
}

func (m *mockBookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if m.createBookFn != nil {
		return m.createBookFn(ctx, book)
	}
	return book, nil
}

func (m *mockBookRepository) ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error) {
	if m.listBooksFn != nil {
		return m.listBooksFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockBookRepository) GetBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	if m.getBookByIDFn != nil {
		return m.getBookByIDFn(ctx, bookID)
	}
	return models.Book{}, nil
}

func (m *mockBookRepository) SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error) {
	if m.searchBooksFn != nil {
		return m.searchBooksFn(ctx, query, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ReviewRepository
// ─────────────────────────────────────────────

type mockReviewRepository struct {
	createReviewFn    func(ctx context.Context, review models.Review) (models.Review, error)
	getReviewByIDFn   func(ctx context.Context, reviewID int64) (models.Review, error)
	listBookReviewsFn func(ctx context.Context, bookID int64, page models.PageRequest) ([]models.Review, int64, error)
	updateReviewFn    func(ctx context.Context, reviewID int64, patch models.ReviewPatch) (models.Review, error)
	deleteReviewFn    func(ctx context.Context, reviewID int64) (models.Review, error)
}

func (m *mockReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	if m.createReviewFn != nil {
		return m.createReviewFn(ctx, review)
	}
	return review, nil
}

func (m *mockReviewRepository) GetReviewByID(ctx context.Context, reviewID int64) (models.Review, error) {
	if m.getReviewByIDFn != nil {
		return m.getReviewByIDFn(ctx, reviewID)
	}
	return models.Review{}, nil
}

func (m *mockReviewRepository) ListBookReviews(ctx context.Context, bookID int64, page models.PageRequest) ([]models.Review, int64, error) {
	if m.listBookReviewsFn != nil {
		return m.listBookReviewsFn(ctx, bookID, page)
	}
	return nil, 0, nil
}

func (m *mockReviewRepository) UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch) (models.Review, error) {
	if m.updateReviewFn != nil {
		return m.updateReviewFn(ctx, reviewID, patch)
	}
	return models.Review{}, nil
}

func (m *mockReviewRepository) DeleteReview(ctx context.Context, reviewID int64) (models.Review, error) {
	if m.deleteReviewFn != nil {
		return m.deleteReviewFn(ctx, reviewID)
	}
	return models.Review{}, nil
}
