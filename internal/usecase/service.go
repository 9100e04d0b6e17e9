package usecase

import (
	"moviehub/internal/data/repository"
	"moviehub/pkg/cache"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, c *cache.Cache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Movie:  NewMovieService(repo, c, log),
		Review: NewReviewService(repo, c, log),
	}
}
