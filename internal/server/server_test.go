package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalitov/bookshelf/internal/config"
	myHTTP "github.com/mkhalitov/bookshelf/internal/handler/http"
	"github.com/mkhalitov/bookshelf/internal/logger"
)

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_WithAddress(t *testing.T) {
	handler := myHTTP.NewHandler(nil, config.StructuredConfig{}, logger.Nop())

	s, err := NewServer(handler, config.Server{HTTPAddress: "localhost:8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestHTTPServerShutdown_BeforeRun(t *testing.T) {
	handler := myHTTP.NewHandler(nil, config.StructuredConfig{}, logger.Nop())
	hs := newHTTPServer(handler.Init(), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	// Shutdown on a server that never started must not panic.
	assert.NotPanics(t, hs.Shutdown)
}
