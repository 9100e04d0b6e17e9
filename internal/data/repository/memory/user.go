package memory

import (
	"context"
	"sync"

	"moviehub/internal/data/entity"
	"moviehub/internal/data/repository"

	"github.com/google/uuid"
)

type UserRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{data: map[uuid.UUID]*entity.User{}}
}

var _ repository.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	r.data[user.ID] = &stored
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.data[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.data {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.data {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) FindByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make(map[uuid.UUID]*entity.User, len(ids))
	for _, id := range ids {
		if user, ok := r.data[id]; ok {
			copied := *user
			users[id] = &copied
		}
	}
	return users, nil
}
