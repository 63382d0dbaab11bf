package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/models"
)

func newTestReviewRepo(t *testing.T) (*reviewRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	wrapped, mock, db := newTestDB(t)
	repo := &reviewRepository{
		db:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func annotatedReviewRows(now time.Time) *sqlmock.Rows {
	comment := "great"
	return sqlmock.
		NewRows([]string{
			"review_id", "book_id", "user_id", "username", "rating", "comment", "created_at", "updated_at",
		}).
		AddRow(1, 2, 3, "alice", 5, comment, now, now)
}

func TestCreateReview_Success(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()
	comment := "great"
	review := models.Review{BookID: 2, UserID: 3, Rating: 5, Comment: &comment}

	mock.ExpectQuery("WITH inserted AS").
		WithArgs(review.BookID, review.UserID, review.Rating, review.Comment).
		WillReturnRows(annotatedReviewRows(time.Now()))

	created, err := repo.CreateReview(ctx, review)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ReviewID != 1 {
		t.Errorf("expected ReviewID=1, got %d", created.ReviewID)
	}
	if created.Username != "alice" {
		t.Errorf("expected username annotation, got %q", created.Username)
	}
}

func TestCreateReview_Duplicate(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("WITH inserted AS").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, constraintReviewPerUser))

	_, err := repo.CreateReview(ctx, models.Review{BookID: 2, UserID: 3, Rating: 4})
	if !errors.Is(err, ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestCreateReview_BookGone(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("WITH inserted AS").
		WillReturnError(pgConstraintError(pgerrcode.ForeignKeyViolation, constraintReviewBookFK))

	_, err := repo.CreateReview(ctx, models.Review{BookID: 42, UserID: 3, Rating: 4})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestGetReviewByID_Success(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM reviews r").
		WithArgs(int64(1)).
		WillReturnRows(annotatedReviewRows(time.Now()))

	review, err := repo.GetReviewByID(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.UserID != 3 {
		t.Errorf("expected UserID=3, got %d", review.UserID)
	}
	if review.Username != "alice" {
		t.Errorf("expected username annotation, got %q", review.Username)
	}
}

func TestGetReviewByID_NotFound(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM reviews r").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetReviewByID(ctx, 404)
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestListBookReviews_Success(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()
	page := models.PageRequest{Page: 1, Limit: 10, Offset: 0}

	mock.ExpectQuery("SELECT (.+) FROM reviews r").
		WithArgs(int64(2), page.Limit, page.Offset).
		WillReturnRows(annotatedReviewRows(time.Now()))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	reviews, total, err := repo.ListBookReviews(ctx, 2, page)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 1 || total != 1 {
		t.Fatalf("expected 1 review and total=1, got %d and %d", len(reviews), total)
	}
}

func TestUpdateReview_PartialPatch(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()
	rating := 3
	now := time.Now()
	comment := "unchanged"

	rows := sqlmock.
		NewRows([]string{"review_id", "book_id", "user_id", "rating", "comment", "created_at", "updated_at"}).
		AddRow(1, 2, 3, rating, comment, now, now)

	// rating-only patch: args are the new rating then the review id
	mock.ExpectQuery("UPDATE reviews").
		WithArgs(rating, int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateReview(ctx, 1, models.ReviewPatch{Rating: &rating})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Rating != rating {
		t.Errorf("expected rating %d, got %d", rating, updated.Rating)
	}
	if updated.Comment == nil || *updated.Comment != comment {
		t.Errorf("expected comment untouched, got %v", updated.Comment)
	}
}

func TestUpdateReview_VanishedBetweenGuardAndUpdate(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()
	rating := 3

	mock.ExpectQuery("UPDATE reviews").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateReview(ctx, 1, models.ReviewPatch{Rating: &rating})
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestDeleteReview_Success(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"review_id", "book_id", "user_id", "rating", "comment", "created_at", "updated_at"}).
		AddRow(1, 2, 3, 5, nil, now, now)

	mock.ExpectQuery("DELETE FROM reviews").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	deleted, err := repo.DeleteReview(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.ReviewID != 1 {
		t.Errorf("expected ReviewID=1, got %d", deleted.ReviewID)
	}
	if deleted.Comment != nil {
		t.Errorf("expected nil comment, got %v", deleted.Comment)
	}
}

func TestDeleteReview_NotFound(t *testing.T) {
	repo, mock, db := newTestReviewRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("DELETE FROM reviews").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.DeleteReview(ctx, 404)
	if !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
