package service

import (
	"context"
	"errors"

	"macrolog/internal/model"
	"macrolog/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	store store.Store
}

func NewAuth(st store.Store) *Auth {
	return &Auth{store: st}
}

// Login verifies the password against the stored bcrypt hash. An unknown
// username and a wrong password both come back as ErrInvalidCredentials.
func (s *Auth) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
