package models

// PageRequest is the normalized pagination window derived from the raw
// "page" and "limit" query parameters: page defaults to 1, limit defaults
// to 10 and is clamped to 50, offset is (page-1)*limit and never negative.
type PageRequest struct {
	Page   int
	Limit  int
	Offset int
}

// Pagination describes the window of a paginated response.
//
// TotalBooks is set by book listing and search responses, TotalReviews by
// the book detail response; the unused counter is omitted from JSON.
type Pagination struct {
	Page         int    `json:"page"`
	Limit        int    `json:"limit"`
	TotalBooks   *int64 `json:"total_books,omitempty"`
	TotalReviews *int64 `json:"total_reviews,omitempty"`
	TotalPages   int64  `json:"total_pages"`
}

// NewBookPagination assembles the pagination block of a book listing or
// search response.
func NewBookPagination(page PageRequest, total int64) Pagination {
	return Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		TotalBooks: &total,
		TotalPages: totalPages(total, page.Limit),
	}
}

// NewReviewPagination assembles the pagination block of a book detail
// response.
func NewReviewPagination(page PageRequest, total int64) Pagination {
	return Pagination{
		Page:         page.Page,
		Limit:        page.Limit,
		TotalReviews: &total,
		TotalPages:   totalPages(total, page.Limit),
	}
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
