package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not consist of exactly two space-separated
	// parts with a "Bearer" scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Sentinel errors raised while decoding the request itself, before any
// business logic runs.
var (
	// ErrInvalidJSONBody is returned when the request body cannot be
	// decoded as JSON.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrInvalidIDParameter is returned when a path id parameter is not a
	// well-formed positive integer.
	ErrInvalidIDParameter = errors.New("invalid id parameter")
)
