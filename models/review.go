package models

import "time"

// Review is a user's rating and optional comment for one book.
// At most one review exists per (book, user) pair; the database enforces
// this with a unique constraint. Deleting the book or the user cascades
// deletion of the review.
type Review struct {
	// ReviewID is the internal unique identifier of the review.
	ReviewID int64 `json:"id"`

	// BookID references the reviewed book.
	BookID int64 `json:"book_id"`

	// UserID references the owning user, the only account permitted to
	// update or delete the review.
	UserID int64 `json:"user_id"`

	// Username is the owning user's handle, joined in by queries that
	// annotate reviews for presentation. Never persisted on this table.
	Username string `json:"username"`

	// Rating is the integer score, 1–5 inclusive, required.
	Rating int `json:"rating"`

	// Comment is optional free text, at most 2000 characters.
	Comment *string `json:"comment,omitempty"`

	// CreatedAt is the timestamp when the review was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every successful update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Review model.
func (r Review) TableName() string {
	return "reviews"
}

// ReviewPatch carries the optional fields of a partial review update.
// Nil fields are left untouched by the mapped UPDATE statement; at least
// one field must be non-nil for the patch to be valid.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// IsEmpty reports whether the patch carries no field at all.
func (p ReviewPatch) IsEmpty() bool {
	return p.Rating == nil && p.Comment == nil
}
