package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/bookshelf/internal/logger"
)

func TestWithTraceID_GeneratesWhenHeaderMissing(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	traceID := rec.Header().Get(traceIDHeader)
	require.NotEmpty(t, traceID)

	_, err := uuid.Parse(traceID)
	assert.NoError(t, err, "generated trace ID should be a valid UUID, got: %s", traceID)
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set(traceIDHeader, "client-supplied-trace-id")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "client-supplied-trace-id", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.withTraceID(next)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		rec := httptest.NewRecorder()

		middleware.ServeHTTP(rec, req)

		traceID := rec.Header().Get(traceIDHeader)
		require.NotEmpty(t, traceID)
		assert.False(t, seen[traceID], "trace ID %s issued twice", traceID)
		seen[traceID] = true
	}
}

// The context logger handed to downstream handlers must carry the trace ID.
func TestWithTraceID_InjectsLoggerWithTraceID(t *testing.T) {
	var logBuf bytes.Buffer
	h := newTestHandler(nil, nil, nil)
	h.logger = &logger.Logger{Logger: zerolog.New(&logBuf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Contains(t, logBuf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, logBuf.String(), "inside handler")
}
