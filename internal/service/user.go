package service

import (
	"context"
	"errors"
	"strings"

	"macrolog/internal/model"
	"macrolog/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Users manages accounts and daily targets.
type Users struct {
	store store.Store
}

func NewUsers(st store.Store) *Users {
	return &Users{store: st}
}

func (s *Users) Get(ctx context.Context, id int) (*model.User, error) {
	u, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// Create registers a user. Omitted targets fall back to the defaults;
// explicit targets must be positive across all four nutrients.
func (s *Users) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, invalid("username", "must not be empty")
	}
	if req.Password == "" {
		return nil, invalid("password", "must not be empty")
	}
	targets := model.DefaultTargets
	if req.DailyTargets != nil {
		if err := validateTargets(*req.DailyTargets); err != nil {
			return nil, err
		}
		targets = *req.DailyTargets
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := model.User{Username: req.Username, Password: string(hash), DailyTargets: targets}
	if err := s.store.CreateUser(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateTargets replaces the user's daily goals as a whole 4-tuple.
func (s *Users) UpdateTargets(ctx context.Context, id int, t model.Targets) (*model.User, error) {
	if err := validateTargets(t); err != nil {
		return nil, err
	}
	u, err := s.store.UpdateUserTargets(ctx, id, t)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func validateTargets(t model.Targets) error {
	fields := map[string]float64{
		"calories": t.Calories,
		"protein":  t.Protein,
		"carbs":    t.Carbs,
		"fat":      t.Fat,
	}
	for field, v := range fields {
		if v <= 0 {
			return invalid(field, "target must be positive")
		}
	}
	return nil
}
