package models

import "time"

// Book is a bibliographic record submitted by an authenticated user.
//
// The (Title, Author) pair is unique under case-insensitive comparison;
// the database enforces this with a unique index on (lower(title),
// lower(author)). CreatedBy is nullable so that a book survives the
// deletion of its creator.
type Book struct {
	// BookID is the internal unique identifier of the book.
	BookID int64 `json:"id"`

	// Title of the book, required, at most 255 characters.
	Title string `json:"title"`

	// Author of the book, required, at most 255 characters.
	Author string `json:"author"`

	// Genre is an optional classification label.
	Genre *string `json:"genre,omitempty"`

	// Description is an optional free-text summary.
	Description *string `json:"description,omitempty"`

	// PublishedYear is optional; when present it must lie within
	// [0, current year].
	PublishedYear *int `json:"published_year,omitempty"`

	// ISBN is an optional international standard book number.
	ISBN *string `json:"isbn,omitempty"`

	// CreatedBy references the user who submitted the book. Nil when the
	// creator account has since been deleted.
	CreatedBy *int64 `json:"created_by,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last record modification.
	UpdatedAt time.Time `json:"updated_at"`

	// AverageRating is the mean review rating rounded to one decimal,
	// 0 when the book has no reviews. Populated by list/detail queries.
	AverageRating float64 `json:"average_rating"`

	// ReviewCount is the number of reviews attached to the book.
	// Populated by list/detail queries.
	ReviewCount int64 `json:"review_count"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookFilter narrows a book listing. Both fields are optional,
// case-insensitive substring matches, combined with logical AND.
type BookFilter struct {
	Author string
	Genre  string
}
