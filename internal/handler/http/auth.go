package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		User:  registeredUser,
		Token: token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user logged in")

	utils.WriteJSON(w, models.AuthResponse{
		User:  foundUser,
		Token: token.SignedString,
	}, http.StatusOK)
}
