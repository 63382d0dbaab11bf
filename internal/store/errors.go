package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when an attempt to register a new user
	// fails because the (case-folded) email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user lookup by id or email
	// produces an empty result set.
	ErrUserNotFound = errors.New("user not found")

	// ErrBookAlreadyExists is returned when an INSERT into books violates
	// the case-insensitive (title, author) uniqueness invariant.
	ErrBookAlreadyExists = errors.New("book with this title and author already exists")

	// ErrBookNotFound is returned when a book id has no backing record.
	ErrBookNotFound = errors.New("book not found")

	// ErrDuplicateReview is returned when an INSERT into reviews violates
	// the one-review-per-(book, user) uniqueness invariant.
	ErrDuplicateReview = errors.New("review for this book already exists")

	// ErrReviewNotFound is returned when a review id has no backing record.
	ErrReviewNotFound = errors.New("review not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason other than a recognised constraint
	// violation.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
