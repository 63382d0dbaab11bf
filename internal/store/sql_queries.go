package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalitov/bookshelf/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createBook = `INSERT INTO books (title, author, genre, description, published_year, isbn, created_by)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING book_id, title, author, genre, description, published_year, isbn, created_by, created_at, updated_at;`

	getBookByID = `SELECT b.book_id, b.title, b.author, b.genre, b.description, b.published_year, b.isbn, b.created_by, b.created_at, b.updated_at,
        COALESCE(ROUND(AVG(r.rating)::numeric, 1), 0)::float8 AS average_rating,
        COUNT(r.review_id) AS review_count
    FROM books b
    LEFT JOIN reviews r ON r.book_id = b.book_id
    WHERE b.book_id = $1
    GROUP BY b.book_id;`

	// createReview folds the username annotation into the INSERT so that the
	// review and its submitter's handle come back in one atomic statement.
	createReview = `WITH inserted AS (
        INSERT INTO reviews (book_id, user_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        RETURNING review_id, book_id, user_id, rating, comment, created_at, updated_at
    )
    SELECT i.review_id, i.book_id, i.user_id, u.username, i.rating, i.comment, i.created_at, i.updated_at
    FROM inserted i
    JOIN users u ON u.user_id = i.user_id;`

	getReviewByID = `SELECT r.review_id, r.book_id, r.user_id, u.username, r.rating, r.comment, r.created_at, r.updated_at
    FROM reviews r
    JOIN users u ON u.user_id = r.user_id
    WHERE r.review_id = $1;`

	listBookReviews = `SELECT r.review_id, r.book_id, r.user_id, u.username, r.rating, r.comment, r.created_at, r.updated_at
    FROM reviews r
    JOIN users u ON u.user_id = r.user_id
    WHERE r.book_id = $1
    ORDER BY r.created_at DESC
    LIMIT $2 OFFSET $3;`

	countBookReviews = `SELECT COUNT(*) FROM reviews WHERE book_id = $1;`

	deleteReview = `DELETE FROM reviews
    WHERE review_id = $1
    RETURNING review_id, book_id, user_id, rating, comment, created_at, updated_at;`
)

// Constraint names from the migrations, used to tell apart the uniqueness
// and referential invariants violated by a failed INSERT.
const (
	constraintUsername       = "users_username_key"
	constraintEmail          = "users_email_key"
	constraintBookTitle      = "books_title_author_lower_idx"
	constraintReviewPerUser  = "reviews_book_id_user_id_key"
	constraintReviewBookFK   = "reviews_book_id_fkey"
	constraintBookCreatorFK  = "books_created_by_fkey"
	constraintReviewUserFK   = "reviews_user_id_fkey"
	constraintRatingInterval = "reviews_rating_check"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders. All dynamic queries in this package go through it.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// bookColumns are the raw book columns selected by every enriched listing
// query, in scan order.
var bookColumns = []string{
	"b.book_id",
	"b.title",
	"b.author",
	"b.genre",
	"b.description",
	"b.published_year",
	"b.isbn",
	"b.created_by",
	"b.created_at",
	"b.updated_at",
}

// bookAggregates are the review enrichment columns appended to every book
// listing: average rating rounded to one decimal (0 without reviews) and
// the review count.
var bookAggregates = []string{
	"COALESCE(ROUND(AVG(r.rating)::numeric, 1), 0)::float8 AS average_rating",
	"COUNT(r.review_id) AS review_count",
}

// buildListBooksQuery assembles the filtered, enriched, paginated book
// listing. Author and genre filters are case-insensitive substring matches
// combined with logical AND; results are ordered newest-created first.
func buildListBooksQuery(filter models.BookFilter, page models.PageRequest) (string, []any, error) {
	qb := psql.Select(append(append([]string{}, bookColumns...), bookAggregates...)...).
		From("books b").
		LeftJoin("reviews r ON r.book_id = b.book_id").
		GroupBy("b.book_id").
		OrderBy("b.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	qb = applyBookFilter(qb, filter)

	return qb.ToSql()
}

// buildCountBooksQuery counts the books matching the same filter as
// [buildListBooksQuery], for the pagination block.
func buildCountBooksQuery(filter models.BookFilter) (string, []any, error) {
	qb := applyBookFilter(psql.Select("COUNT(*)").From("books b"), filter)

	return qb.ToSql()
}

func applyBookFilter(qb sq.SelectBuilder, filter models.BookFilter) sq.SelectBuilder {
	if filter.Author != "" {
		qb = qb.Where(sq.ILike{"b.author": containsPattern(filter.Author)})
	}
	if filter.Genre != "" {
		qb = qb.Where(sq.ILike{"b.genre": containsPattern(filter.Genre)})
	}

	return qb
}

// likeEscaper neutralizes the LIKE metacharacters in user input so that a
// literal "%", "_" or "\" in a filter or search term matches itself instead
// of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns raw user input into a substring-containment ILIKE
// pattern.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// searchRelevance ranks matches for ordering: exact case-insensitive
// equality on title or author (4), substring containment (3), anything
// else — i.e. full-text-only matches (1).
const searchRelevance = `CASE
    WHEN LOWER(b.title) = LOWER(?) OR LOWER(b.author) = LOWER(?) THEN 4
    WHEN b.title ILIKE ? OR b.author ILIKE ? THEN 3
    ELSE 1 END AS relevance`

// buildSearchBooksQuery assembles the search query: the union of
// case-insensitive substring matches on title/author and a linguistic
// full-text match against the combined title+author document, ordered by
// relevance rank and then newest-created first.
func buildSearchBooksQuery(query string, page models.PageRequest) (string, []any, error) {
	pattern := containsPattern(query)

	qb := psql.Select(append(append([]string{}, bookColumns...), bookAggregates...)...).
		Column(sq.Expr(searchRelevance, query, query, pattern, pattern)).
		From("books b").
		LeftJoin("reviews r ON r.book_id = b.book_id").
		Where(searchMatch(query)).
		GroupBy("b.book_id").
		OrderBy("relevance DESC", "b.created_at DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))

	return qb.ToSql()
}

// buildCountSearchQuery counts the books matching the same predicate as
// [buildSearchBooksQuery], for the pagination block.
func buildCountSearchQuery(query string) (string, []any, error) {
	qb := psql.Select("COUNT(*)").
		From("books b").
		Where(searchMatch(query))

	return qb.ToSql()
}

func searchMatch(query string) sq.Or {
	pattern := containsPattern(query)

	return sq.Or{
		sq.ILike{"b.title": pattern},
		sq.ILike{"b.author": pattern},
		sq.Expr("to_tsvector('english', b.title || ' ' || b.author) @@ plainto_tsquery('english', ?)", query),
	}
}

// buildUpdateReviewQuery maps a [models.ReviewPatch] deterministically to an
// UPDATE statement: only non-nil fields are set, and updated_at is always
// refreshed. The caller guarantees the patch is non-empty.
func buildUpdateReviewQuery(reviewID int64, patch models.ReviewPatch) (string, []any, error) {
	qb := psql.Update("reviews").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"review_id": reviewID}).
		Suffix("RETURNING review_id, book_id, user_id, rating, comment, created_at, updated_at")

	if patch.Rating != nil {
		qb = qb.Set("rating", *patch.Rating)
	}
	if patch.Comment != nil {
		qb = qb.Set("comment", *patch.Comment)
	}

	return qb.ToSql()
}
