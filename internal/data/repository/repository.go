package repository

import (
	"moviehub/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User   UserRepository
	Movie  MovieRepository
	Review ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:   NewUserRepository(db, log),
		Movie:  NewMovieRepository(db, log),
		Review: NewReviewRepository(db, log),
	}
}
