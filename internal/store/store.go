// Package store defines the persistence boundary of the tracker. The
// service layer depends only on the Store interface; production injects
// the gorm implementation over MySQL, tests inject the same
// implementation over a throwaway SQLite database.
package store

import (
	"context"
	"errors"

	"macrolog/internal/model"
)

// ErrNotFound is returned by any lookup whose key has no row. Callers
// translate it into an entity-specific error at the service boundary.
var ErrNotFound = errors.New("record not found")

type Store interface {
	// Users
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, u *model.User) error
	UpdateUserTargets(ctx context.Context, id int, t model.Targets) (*model.User, error)

	// Food catalog (append-only)
	ListFoodItems(ctx context.Context) ([]model.FoodItem, error)
	GetFoodItem(ctx context.Context, id int) (*model.FoodItem, error)
	CreateFoodItem(ctx context.Context, f *model.FoodItem) error
	SearchFoodItems(ctx context.Context, query string) ([]model.FoodItem, error)

	// Meals
	MealsByDate(ctx context.Context, userID int, date string) ([]model.Meal, error)
	GetMeal(ctx context.Context, id int) (*model.Meal, error)
	CreateMeal(ctx context.Context, m *model.Meal) error
	UpdateMeal(ctx context.Context, m *model.Meal) error
	// DeleteMeal removes the meal and all of its items in one transaction.
	// The returned flag reports whether the meal existed.
	DeleteMeal(ctx context.Context, id int) (bool, error)

	// Meal items
	ItemsByMeal(ctx context.Context, mealID int) ([]model.MealItem, error)
	GetMealItem(ctx context.Context, id int) (*model.MealItem, error)
	CreateMealItem(ctx context.Context, mi *model.MealItem) error
	UpdateMealItemQuantity(ctx context.Context, id int, quantity float64) error
	DeleteMealItem(ctx context.Context, id int) (bool, error)

	// Daily logs, keyed by (userID, date)
	GetDailyLog(ctx context.Context, userID int, date string) (*model.DailyLog, error)
	UpsertDailyLog(ctx context.Context, log *model.DailyLog) error
}
