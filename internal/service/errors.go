package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike, so callers cannot probe which accounts
	// exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed wraps JWT generation failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenExpired is returned by ParseToken for a well-formed,
	// correctly signed token whose expiry time has passed.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned by ParseToken for every other token
	// validation failure: bad signature, wrong issuer, malformed string.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenIsExpiredOrInvalid is the uniform outward message the
	// transport layer answers with for any token rejection, so responses
	// do not reveal which check failed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPublishedYearInFuture is returned when a submitted book claims a
	// publication year later than the current one.
	ErrPublishedYearInFuture = errors.New("published_year cannot be in the future")

	// ErrSearchQueryTooShort is returned when the trimmed search query is
	// blank or a single character.
	ErrSearchQueryTooShort = errors.New("search query must be at least 2 characters")

	// ErrEmptyReviewPatch is returned when a review update supplies
	// neither a rating nor a comment.
	ErrEmptyReviewPatch = errors.New("at least one of rating or comment must be provided")

	// ErrNotReviewOwner is returned when the acting user tries to mutate a
	// review owned by someone else.
	ErrNotReviewOwner = errors.New("review belongs to another user")
)
