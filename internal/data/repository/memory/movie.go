package memory

import (
	"context"
	"sort"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"
	"moviehub/pkg/apperrors"

	"github.com/google/uuid"
)

type MovieRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*entity.Movie
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{data: map[uuid.UUID]*entity.Movie{}}
}

var _ repository.MovieRepository = (*MovieRepository)(nil)

func (r *MovieRepository) Create(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *movie
	r.data[movie.ID] = &stored
	return nil
}

func (r *MovieRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	copied := *movie
	return &copied, nil
}

func (r *MovieRepository) FindAll(_ context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.data))
	for _, movie := range r.data {
		copied := *movie
		movies = append(movies, &copied)
	}

	// Insertion-time order, matching the Postgres repository
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].CreatedAt.Equal(movies[j].CreatedAt) {
			return movies[i].ID.String() < movies[j].ID.String()
		}
		return movies[i].CreatedAt.Before(movies[j].CreatedAt)
	})

	return movies, nil
}

func (r *MovieRepository) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.data[id]
	return ok, nil
}

func (r *MovieRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.data)), nil
}

func (r *MovieRepository) Update(_ context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[movie.ID]; !ok {
		return apperrors.ErrNotFound
	}

	stored := *movie
	r.data[movie.ID] = &stored
	return nil
}

func (r *MovieRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return apperrors.ErrNotFound
	}

	delete(r.data, id)
	return nil
}
