package http

import (
	"time"

	"github.com/mkhalitov/bookshelf/internal/config"
	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/service"
	"github.com/mkhalitov/bookshelf/internal/utils"
	"github.com/mkhalitov/bookshelf/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	traceIDs  *utils.UUIDGenerator

	version         string
	requestTimeout  time.Duration
	rateLimit       int
	rateLimitWindow time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		validator:       validators.NewRequestValidator(),
		traceIDs:        utils.NewUUIDGenerator(),
		version:         cfg.App.Version,
		requestTimeout:  cfg.Server.RequestTimeout,
		rateLimit:       cfg.Server.RateLimit,
		rateLimitWindow: cfg.Server.RateLimitWindow,
		logger:          logger,
	}
}
