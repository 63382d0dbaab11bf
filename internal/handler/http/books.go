package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/models"
)

func (h *Handler) addBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var request models.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.validator.Validate(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.AddBook(ctx, request, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", book.BookID).Msg("book created")

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	filter := models.BookFilter{
		Author: query.Get("author"),
		Genre:  query.Get("genre"),
	}
	page := utils.PageRequestFromQuery(query)

	books, total, err := h.services.BookService.ListBooks(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, models.BookListResponse{
		Books:      books,
		Pagination: models.NewBookPagination(page, total),
	}, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookID, err := idPathParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page := utils.PageRequestFromQuery(r.URL.Query())

	book, reviews, totalReviews, err := h.services.BookService.GetBook(ctx, bookID, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if reviews == nil {
		reviews = []models.Review{}
	}

	utils.WriteJSON(w, models.BookDetailResponse{
		Book:       book,
		Reviews:    reviews,
		Pagination: models.NewReviewPagination(page, totalReviews),
	}, http.StatusOK)
}

// idPathParam parses the {id} chi route parameter as a positive integer.
func idPathParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidIDParameter
	}

	return id, nil
}
