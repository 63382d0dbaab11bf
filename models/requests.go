package models

// Request bodies accepted by the HTTP API. Each endpoint decodes into its
// own schema and validates it at the boundary (go-playground/validator
// tags) before any business logic runs.

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateBookRequest is the body of POST /api/books.
//
// PublishedYear's upper bound (the current year) is dynamic and therefore
// checked by the book service rather than by a struct tag.
type CreateBookRequest struct {
	Title         string  `json:"title" validate:"required,max=255"`
	Author        string  `json:"author" validate:"required,max=255"`
	Genre         *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Description   *string `json:"description,omitempty"`
	PublishedYear *int    `json:"published_year,omitempty" validate:"omitempty,min=0"`
	ISBN          *string `json:"isbn,omitempty" validate:"omitempty,max=20"`
}

// CreateReviewRequest is the body of POST /api/books/{id}/reviews.
type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

// UpdateReviewRequest is the body of PUT /api/reviews/{id}. Both fields are
// optional, but at least one must be present; that cross-field rule is
// checked by the handler after decoding.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}
