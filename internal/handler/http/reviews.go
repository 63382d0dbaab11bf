package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/models"
)

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	bookID, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.AddReview(ctx, bookID, request, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", review.ReviewID).Int64("book_id", bookID).Msg("review created")

	utils.WriteJSON(w, review, http.StatusCreated)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	reviewID, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var request models.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	patch := models.ReviewPatch{
		Rating:  request.Rating,
		Comment: request.Comment,
	}

	review, err := h.services.ReviewService.UpdateReview(ctx, reviewID, patch, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", reviewID).Msg("review updated")

	utils.WriteJSON(w, review, http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	reviewID, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	review, err := h.services.ReviewService.DeleteReview(ctx, reviewID, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", reviewID).Msg("review deleted")

	utils.WriteJSON(w, models.DeletedReviewResponse{
		Message: "review deleted",
		Review:  review,
	}, http.StatusOK)
}
