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

// bookRepository is the PostgreSQL-backed implementation of [BookRepository].
// Listing and search queries are built dynamically with squirrel because the
// filter set varies per request; single-record operations use the prepared
// constants from sql_queries.go.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new book and returns the fully populated
// [models.Book] with server-assigned fields.
//
// Error handling:
//   - unique_violation (23505) on the lower(title), lower(author) index →
//     [ErrBookAlreadyExists]. The index is the authoritative duplicate
//     check: two concurrent submissions of the same pair surface exactly
//     one Conflict.
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook,
		book.Title, book.Author, book.Genre, book.Description, book.PublishedYear, book.ISBN, book.CreatedBy)

	if err := row.Err(); err != nil {
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.Book{}, ErrBookAlreadyExists
		}

		log.Err(err).
			Str("func", "*bookRepository.CreateBook").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Msg("error: book insert failed")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&book.BookID, &book.Title, &book.Author, &book.Genre, &book.Description,
		&book.PublishedYear, &book.ISBN, &book.CreatedBy, &book.CreatedAt, &book.UpdatedAt,
	); err != nil {
		// QueryRowContext defers driver errors until Scan, so constraint
		// violations can surface here as well.
		if postgresErrorCode(err) == pgerrcode.UniqueViolation {
			return models.Book{}, ErrBookAlreadyExists
		}

		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// ListBooks returns the filtered page of enriched books, newest-created
// first, and the total number of books matching the filter.
func (r *bookRepository) ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(filter, page)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	books, err := r.queryBooks(ctx, query, args, false)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := buildCountBooksQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	total, err := r.countRows(ctx, countQuery, countArgs)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// GetBookByID loads one enriched book.
//
// Error handling:
//   - No matching row → [ErrBookNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *bookRepository) GetBookByID(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, getBookByID, bookID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*bookRepository.GetBookByID").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Int64("book_id", bookID).
			Msg("error: book lookup failed")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(
		&book.BookID, &book.Title, &book.Author, &book.Genre, &book.Description,
		&book.PublishedYear, &book.ISBN, &book.CreatedBy, &book.CreatedAt, &book.UpdatedAt,
		&book.AverageRating, &book.ReviewCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}

		log.Err(err).Str("func", "*bookRepository.GetBookByID").Msg("error: scanning error")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// SearchBooks returns the page of enriched books matching the query by
// substring or full text, ordered by relevance rank then newest-created
// first, and the total number of matches.
func (r *bookRepository) SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildSearchBooksQuery(query, page)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.SearchBooks").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	books, err := r.queryBooks(ctx, sqlQuery, args, true)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := buildCountSearchQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.SearchBooks").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	total, err := r.countRows(ctx, countQuery, countArgs)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// queryBooks runs a multi-row enriched book query. withRelevance marks
// search queries, whose rows carry the trailing relevance rank column.
func (r *bookRepository) queryBooks(ctx context.Context, query string, args []any, withRelevance bool) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookRepository.queryBooks").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Msg("failed to execute book listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0, 10)

	for rows.Next() {
		var book models.Book

		dest := []any{
			&book.BookID, &book.Title, &book.Author, &book.Genre, &book.Description,
			&book.PublishedYear, &book.ISBN, &book.CreatedBy, &book.CreatedAt, &book.UpdatedAt,
			&book.AverageRating, &book.ReviewCount,
		}
		if withRelevance {
			var relevance int
			dest = append(dest, &relevance)
		}

		if scanErr := rows.Scan(dest...); scanErr != nil {
			log.Err(scanErr).Str("func", "*bookRepository.queryBooks").Msg("failed to scan book row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		books = append(books, book)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*bookRepository.queryBooks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return books, nil
}

func (r *bookRepository) countRows(ctx context.Context, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*bookRepository.countRows").
			Str("classification", r.db.errorClassifier.Classify(err).String()).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
