package http

import (
	"net/http"

	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/models"
)

func (h *Handler) searchBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	page := utils.PageRequestFromQuery(query)

	books, total, err := h.services.BookService.SearchBooks(ctx, query.Get("q"), page)
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
