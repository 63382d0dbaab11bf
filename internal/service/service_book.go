package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/store"
	"github.com/mkhalitov/bookshelf/models"
)

// bookService is the concrete implementation of BookService. It delegates
// persistence to the book repository and uses the review repository to page
// through a book's reviews on the detail operation.
type bookService struct {
	bookRepository   store.BookRepository
	reviewRepository store.ReviewRepository
	logger           *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, reviewRepository store.ReviewRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository:   bookRepository,
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// AddBook persists a new book owned by the acting user.
//
// The publication year's upper bound is the current year, which cannot be
// expressed as a static validation tag and is therefore checked here. The
// case-insensitive (title, author) uniqueness invariant is enforced by the
// repository (store.ErrBookAlreadyExists), including against concurrent
// submissions.
func (b *bookService) AddBook(ctx context.Context, request models.CreateBookRequest, actingUserID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	if request.PublishedYear != nil && *request.PublishedYear > time.Now().Year() {
		log.Info().Int("published_year", *request.PublishedYear).Msg("publication year in the future")
		return models.Book{}, ErrPublishedYearInFuture
	}

	book := models.Book{
		Title:         request.Title,
		Author:        request.Author,
		Genre:         request.Genre,
		Description:   request.Description,
		PublishedYear: request.PublishedYear,
		ISBN:          request.ISBN,
		CreatedBy:     &actingUserID,
	}

	createdBook, err := b.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("title", book.Title).Str("author", book.Author).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

// ListBooks returns the filtered, enriched page of books ordered
// newest-created first, along with the total match count for the pagination
// block. Filtering semantics live in the repository.
func (b *bookService) ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error) {
	books, total, err := b.bookRepository.ListBooks(ctx, filter, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("book listing ended with error")
		return nil, 0, fmt.Errorf("book listing ended with error: %w", err)
	}

	return books, total, nil
}

// GetBook loads one enriched book together with a page of its reviews,
// newest first, each annotated with the reviewing user's username. The
// review page is independent of the book listing pagination.
//
// Fails with store.ErrBookNotFound when the id has no backing record.
func (b *bookService) GetBook(ctx context.Context, bookID int64, page models.PageRequest) (models.Book, []models.Review, int64, error) {
	log := logger.FromContext(ctx)

	book, err := b.bookRepository.GetBookByID(ctx, bookID)
	if err != nil {
		log.Err(err).Int64("id", bookID).Msg("book lookup ended with error")
		return models.Book{}, nil, 0, fmt.Errorf("book lookup ended with error: %w", err)
	}

	reviews, totalReviews, err := b.reviewRepository.ListBookReviews(ctx, bookID, page)
	if err != nil {
		log.Err(err).Int64("id", bookID).Msg("review listing ended with error")
		return models.Book{}, nil, 0, fmt.Errorf("review listing ended with error: %w", err)
	}

	return book, reviews, totalReviews, nil
}

// SearchBooks returns the page of books matching the query, ordered by
// relevance rank and then newest-created first, along with the total match
// count. The query is trimmed first; a blank or single-character query fails
// with ErrSearchQueryTooShort.
func (b *bookService) SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		log.Info().Str("query", query).Msg("search query too short")
		return nil, 0, ErrSearchQueryTooShort
	}

	books, total, err := b.bookRepository.SearchBooks(ctx, query, page)
	if err != nil {
		log.Err(err).Str("query", query).Msg("book search ended with error")
		return nil, 0, fmt.Errorf("book search ended with error: %w", err)
	}

	return books, total, nil
}
