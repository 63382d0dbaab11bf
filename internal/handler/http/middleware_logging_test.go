package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeLoggedRequest builds a request whose context carries a logger writing
// to buf, standing in for the trace-ID middleware.
func makeLoggedRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	tests := []struct {
		name          string
		method        string
		path          string
		handlerStatus int
		handlerBody   string
		wantInLog     []string
	}{
		{
			name:          "GET 200",
			method:        http.MethodGet,
			path:          "/api/books",
			handlerStatus: http.StatusOK,
			handlerBody:   "ok",
			wantInLog: []string{
				`"method":"GET"`,
				`"uri":"/api/books"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:          "POST 201",
			method:        http.MethodPost,
			path:          "/api/books",
			handlerStatus: http.StatusCreated,
			handlerBody:   "created",
			wantInLog: []string{
				`"method":"POST"`,
				`"status":201`,
			},
		},
		{
			name:          "query string preserved in uri",
			method:        http.MethodGet,
			path:          "/api/search?q=dune&page=2",
			handlerStatus: http.StatusOK,
			handlerBody:   "results",
			wantInLog: []string{
				`"uri":"/api/search?q=dune&page=2"`,
				`"status":200`,
			},
		},
		{
			name:          "500 error",
			method:        http.MethodGet,
			path:          "/api/books/1",
			handlerStatus: http.StatusInternalServerError,
			handlerBody:   "internal server error",
			wantInLog: []string{
				`"status":500`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerBody != "" {
					w.Write([]byte(tt.handlerBody))
				}
			})

			req := makeLoggedRequest(tt.method, tt.path, &logBuf)
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.handlerStatus, rec.Code)

			logOutput := logBuf.String()
			for _, want := range tt.wantInLog {
				assert.Contains(t, logOutput, want)
			}
		})
	}
}

// A handler that never calls WriteHeader must still be logged as 200.
func TestWithLogging_ImplicitStatus(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	req := makeLoggedRequest(http.MethodGet, "/api/books", &logBuf)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_ResponseSize(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("a", 4096)))
	})

	req := makeLoggedRequest(http.MethodGet, "/api/books", &logBuf)
	rec := httptest.NewRecorder()

	h.withLogging(next).ServeHTTP(rec, req)

	assert.Contains(t, logBuf.String(), `"size":4096`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("handler panic")
	})

	req := makeLoggedRequest(http.MethodGet, "/api/books", &logBuf)
	rec := httptest.NewRecorder()

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(rec, req)
	})
}
