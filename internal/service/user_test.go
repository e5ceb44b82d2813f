package service

import (
	"context"
	"testing"

	"macrolog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserDefaults(t *testing.T) {
	_, st := newTestTracker(t)
	users := NewUsers(st)
	ctx := context.Background()

	u, err := users.Create(ctx, model.CreateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Positive(t, u.ID)
	assert.Equal(t, model.DefaultTargets, u.DailyTargets)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
}

func TestCreateUserExplicitTargets(t *testing.T) {
	_, st := newTestTracker(t)
	users := NewUsers(st)
	ctx := context.Background()

	want := model.Targets{Calories: 1800, Protein: 150, Carbs: 160, Fat: 55}
	u, err := users.Create(ctx, model.CreateUserRequest{Username: "bob", Password: "pw", DailyTargets: &want})
	require.NoError(t, err)
	assert.Equal(t, want, u.DailyTargets)
}

func TestCreateUserValidation(t *testing.T) {
	_, st := newTestTracker(t)
	users := NewUsers(st)
	ctx := context.Background()

	_, err := users.Create(ctx, model.CreateUserRequest{Username: "  ", Password: "pw"})
	assert.True(t, IsValidation(err))

	_, err = users.Create(ctx, model.CreateUserRequest{Username: "x", Password: ""})
	assert.True(t, IsValidation(err))

	bad := model.Targets{Calories: 2000, Protein: 0, Carbs: 200, Fat: 60}
	_, err = users.Create(ctx, model.CreateUserRequest{Username: "x", Password: "pw", DailyTargets: &bad})
	assert.True(t, IsValidation(err))
}

func TestUpdateTargets(t *testing.T) {
	_, st := newTestTracker(t)
	users := NewUsers(st)
	ctx := context.Background()

	u, err := users.Create(ctx, model.CreateUserRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	want := model.Targets{Calories: 2200, Protein: 130, Carbs: 260, Fat: 70}
	got, err := users.UpdateTargets(ctx, u.ID, want)
	require.NoError(t, err)
	assert.Equal(t, want, got.DailyTargets)

	_, err = users.UpdateTargets(ctx, 9999, want)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = users.UpdateTargets(ctx, u.ID, model.Targets{Calories: -1, Protein: 1, Carbs: 1, Fat: 1})
	assert.True(t, IsValidation(err))
}

func TestLogin(t *testing.T) {
	_, st := newTestTracker(t)
	users := NewUsers(st)
	auth := NewAuth(st)
	ctx := context.Background()

	created, err := users.Create(ctx, model.CreateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	u, err := auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = auth.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
