package http

import (
	"errors"
	"net/http"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/service"
	"github.com/mkhalitov/bookshelf/internal/store"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/internal/validators"
	"github.com/mkhalitov/bookshelf/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody:    http.StatusBadRequest,
	ErrInvalidIDParameter: http.StatusBadRequest,

	validators.ErrValidation:      http.StatusBadRequest,
	validators.ErrUnsupportedType: http.StatusInternalServerError,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenExpired:            http.StatusUnauthorized,
	service.ErrTokenInvalid:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPublishedYearInFuture:   http.StatusBadRequest,
	service.ErrSearchQueryTooShort:     http.StatusBadRequest,
	service.ErrEmptyReviewPatch:        http.StatusBadRequest,
	service.ErrNotReviewOwner:          http.StatusForbidden,

	store.ErrUsernameTaken:      http.StatusConflict,
	store.ErrEmailTaken:         http.StatusConflict,
	store.ErrBookAlreadyExists:  http.StatusConflict,
	store.ErrDuplicateReview:    http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrBookNotFound:       http.StatusNotFound,
	store.ErrReviewNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// classifyError finds the sentinel in err's chain and its HTTP status.
// Unrecognised errors collapse to 500.
func classifyError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the uniform error body
// {"error": "<message>"}.
//
// Deliberate errors answer with their sentinel's text; validation failures
// keep the full field description generated at the boundary. Anything mapped
// to 500 answers with a generic message so no internal detail leaks to the
// caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	target, status := classifyError(err)
	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("unexpected error")
		utils.WriteJSON(w, models.ErrorResponse{Error: "internal server error"}, status)
	case errors.Is(err, validators.ErrValidation):
		log.Info().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
	default:
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Error: target.Error()}, status)
	}
}
