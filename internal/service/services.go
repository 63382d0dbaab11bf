package service

import (
	"github.com/mkhalitov/bookshelf/internal/config"
	"github.com/mkhalitov/bookshelf/internal/logger"
	"github.com/mkhalitov/bookshelf/internal/store"
)

type Services struct {
	AuthService   AuthService
	BookService   BookService
	ReviewService ReviewService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, cfg.App, logger),
		BookService:   NewBookService(storages.BookRepository, storages.ReviewRepository, logger),
		ReviewService: NewReviewService(storages.ReviewRepository, logger),
	}
}
