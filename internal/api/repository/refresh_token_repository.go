package repository

import (
	"sync"

	"novelhub/internal/api/models"
)

type RefreshTokenRepository interface {
	Create(token *models.RefreshToken) error
	FindByToken(token string) (*models.RefreshToken, error)
	Delete(id string) error
	DeleteByToken(token string) error
	DeleteByUser(userID string) error
}

type refreshTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]*models.RefreshToken // token string -> record
}

func NewRefreshTokenRepository() RefreshTokenRepository {
	return &refreshTokenRepository{
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *refreshTokenRepository) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *refreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, exists := r.tokens[token]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *refreshTokenRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, rec := range r.tokens {
		if rec.ID == id {
			delete(r.tokens, key)
			return nil
		}
	}
	return ErrNotFound
}

func (r *refreshTokenRepository) DeleteByToken(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token]; !exists {
		return ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *refreshTokenRepository) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, rec := range r.tokens {
		if rec.UserID == userID {
			delete(r.tokens, key)
		}
	}
	return nil
}
