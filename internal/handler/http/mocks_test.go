package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/service"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/internal/validators"
	"github.com/mkhalitov/bookshelf/models"
)

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	if m.resolveUserFn != nil {
		return m.resolveUserFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

// ─────────────────────────────────────────────
// Mock service.BookService
// ─────────────────────────────────────────────

type mockBookService struct {
	addBookFn     func(ctx context.Context, request models.CreateBookRequest, actingUserID int64) (models.Book, error)
	listBooksFn   func(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error)
	getBookFn     func(ctx context.Context, bookID int64, page models.PageRequest) (models.Book, []models.Review, int64, error)
	searchBooksFn func(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error)
}

func (m *mockBookService) AddBook(ctx context.Context, request models.CreateBookRequest, actingUserID int64) (models.Book, error) {
	return m.addBookFn(ctx, request, actingUserID)
}

func (m *mockBookService) ListBooks(ctx context.Context, filter models.BookFilter, page models.PageRequest) ([]models.Book, int64, error) {
	return m.listBooksFn(ctx, filter, page)
}

func (m *mockBookService) GetBook(ctx context.Context, bookID int64, page models.PageRequest) (models.Book, []models.Review, int64, error) {
	return m.getBookFn(ctx, bookID, page)
}

func (m *mockBookService) SearchBooks(ctx context.Context, query string, page models.PageRequest) ([]models.Book, int64, error) {
	return m.searchBooksFn(ctx, query, page)
}

// ─────────────────────────────────────────────
// Mock service.ReviewService
// ─────────────────────────────────────────────

type mockReviewService struct {
	addReviewFn    func(ctx context.Context, bookID int64, request models.CreateReviewRequest, actingUserID int64) (models.Review, error)
	updateReviewFn func(ctx context.Context, reviewID int64, patch models.ReviewPatch, actingUserID int64) (models.Review, error)
	deleteReviewFn func(ctx context.Context, reviewID int64, actingUserID int64) (models.Review, error)
}

func (m *mockReviewService) AddReview(ctx context.Context, bookID int64, request models.CreateReviewRequest, actingUserID int64) (models.Review, error) {
	return m.addReviewFn(ctx, bookID, request, actingUserID)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, reviewID int64, patch models.ReviewPatch, actingUserID int64) (models.Review, error) {
	return m.updateReviewFn(ctx, reviewID, patch, actingUserID)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, reviewID int64, actingUserID int64) (models.Review, error) {
	return m.deleteReviewFn(ctx, reviewID, actingUserID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mocks. Nil mocks are
// allowed for services the test never reaches.
func newTestHandler(auth service.AuthService, books service.BookService, reviews service.ReviewService) *Handler {
	return &Handler{
		services: &service.Services{
			AuthService:   auth,
			BookService:   books,
			ReviewService: reviews,
		},
		validator: validators.NewRequestValidator(),
		traceIDs:  utils.NewUUIDGenerator(),
		version:   "test",
		logger:    logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context, standing in
// for the trace-ID middleware.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// withActingUser stores the acting user's ID in the request context, standing
// in for the auth middleware.
func withActingUser(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// withIDParam attaches a chi route context carrying the {id} parameter.
func withIDParam(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeErrorBody extracts the "error" message from a JSON error response.
func decodeErrorBody(t *testing.T, body []byte) string {
	t.Helper()
	var errResp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp.Error
}
