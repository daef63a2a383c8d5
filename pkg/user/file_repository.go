package user

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"Planta-Backend/internal/localstore"
	"context"
	"sync"
)

const usersKey = "users"

// fileRepository keeps registered users in the local store. Used when no
// database is configured.
type fileRepository struct {
	store *localstore.Store
	mu    sync.RWMutex
	users []*entities.User
}

func NewFileRepository(store *localstore.Store) UserRepository {
	r := &fileRepository{store: store}
	r.users = make([]*entities.User, 0)
	store.Load(usersKey, &r.users)
	return r
}

func (r *fileRepository) persistLocked() {
	r.store.Save(usersKey, r.users)
}

func (r *fileRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users = append(r.users, user)
	r.persistLocked()
	return nil
}

func (r *fileRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID.String() == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fileRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fileRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			r.persistLocked()
			return nil
		}
	}
	return domain.ErrUserNotFound
}
