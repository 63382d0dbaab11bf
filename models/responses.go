package models

// Response bodies produced by the HTTP API.

// AuthResponse is returned by signup (201) and login (200).
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// BookListResponse is returned by GET /api/books and GET /api/search.
type BookListResponse struct {
	Books      []Book     `json:"books"`
	Pagination Pagination `json:"pagination"`
}

// BookDetailResponse is returned by GET /api/books/{id}. The reviews are
// paginated independently of the book listing.
type BookDetailResponse struct {
	Book       Book       `json:"book"`
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

// DeletedReviewResponse confirms a hard delete by echoing the removed record.
type DeletedReviewResponse struct {
	Message string `json:"message"`
	Review  Review `json:"review"`
}

// ErrorResponse is the uniform error body: {"error": "<message>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}
