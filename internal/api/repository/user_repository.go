package repository

import (
	"strings"
	"sync"

	"novelhub/internal/api/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	// AdjustPoints applies delta to the user's balance and returns the new
	// balance. The balance never goes negative.
	AdjustPoints(userID string, delta int) (int, error)
}

// userRepository keeps all profiles in memory; accounts live for the process
// lifetime only, mirroring the mock sign-in model.
type userRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // id -> user
}

func NewUserRepository() UserRepository {
	return &userRepository{
		users: make(map[string]*models.User),
	}
}

func (r *userRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Username, username) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *userRepository) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.ID]; !exists {
		return ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *userRepository) AdjustPoints(userID string, delta int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[userID]
	if !exists {
		return 0, ErrNotFound
	}
	if user.Points+delta < 0 {
		return user.Points, ErrNegativeBalance
	}
	user.Points += delta
	return user.Points, nil
}
