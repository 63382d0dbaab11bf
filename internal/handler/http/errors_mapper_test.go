package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkhalitov/bookshelf/internal/service"
	"github.com/mkhalitov/bookshelf/internal/store"
	"github.com/mkhalitov/bookshelf/internal/validators"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid json body", ErrInvalidJSONBody, http.StatusBadRequest},
		{"invalid id parameter", ErrInvalidIDParameter, http.StatusBadRequest},
		{"validation failure", fmt.Errorf("%w: title is required", validators.ErrValidation), http.StatusBadRequest},
		{"published year in future", service.ErrPublishedYearInFuture, http.StatusBadRequest},
		{"search query too short", service.ErrSearchQueryTooShort, http.StatusBadRequest},
		{"empty review patch", service.ErrEmptyReviewPatch, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", service.ErrTokenExpired, http.StatusUnauthorized},
		{"invalid token", service.ErrTokenInvalid, http.StatusUnauthorized},
		{"uniform token rejection", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"not review owner", service.ErrNotReviewOwner, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"book not found", store.ErrBookNotFound, http.StatusNotFound},
		{"review not found", store.ErrReviewNotFound, http.StatusNotFound},
		{"username taken", store.ErrUsernameTaken, http.StatusConflict},
		{"email taken", store.ErrEmailTaken, http.StatusConflict},
		{"book already exists", store.ErrBookAlreadyExists, http.StatusConflict},
		{"duplicate review", store.ErrDuplicateReview, http.StatusConflict},
		{"token creation failure", service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{"query execution failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, status := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

// Wrapped errors must still map through their sentinel.
func TestClassifyError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("creating review: %w", store.ErrDuplicateReview)

	target, status := classifyError(wrapped)

	assert.Equal(t, store.ErrDuplicateReview, target)
	assert.Equal(t, http.StatusConflict, status)
}

func TestWriteError_InternalDetailsHidden(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/api/books", nil))
	rec := httptest.NewRecorder()

	h.writeError(rec, req, fmt.Errorf("scanning rows: %w: connection reset", store.ErrScanningRows))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeErrorBody(t, rec.Body.Bytes()))
}

func TestWriteError_ValidationMessageKept(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/signup", nil))
	rec := httptest.NewRecorder()

	err := fmt.Errorf("%w: password must be at least 8 characters long", validators.ErrValidation)
	h.writeError(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, err.Error(), decodeErrorBody(t, rec.Body.Bytes()))
}
