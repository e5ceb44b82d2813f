package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"macrolog/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormStore struct {
	db *gorm.DB
}

// NewGorm wraps a gorm connection in a Store. The caller owns the
// connection; run AutoMigrate before handing it in.
func NewGorm(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// AutoMigrate creates or updates the five tracker tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.FoodItem{},
		&model.Meal{},
		&model.MealItem{},
		&model.DailyLog{},
	)
}

func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("query %s: %w", what, err)
}

// --- users ---

func (s *gormStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, wrapNotFound(err, "user")
	}
	return &u, nil
}

func (s *gormStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if err != nil {
		return nil, wrapNotFound(err, "user")
	}
	return &u, nil
}

func (s *gormStore) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateUserTargets(ctx context.Context, id int, t model.Targets) (*model.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	u.DailyTargets = t
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, fmt.Errorf("update targets: %w", err)
	}
	return u, nil
}

// --- food catalog ---

func (s *gormStore) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	return items, nil
}

func (s *gormStore) GetFoodItem(ctx context.Context, id int) (*model.FoodItem, error) {
	var f model.FoodItem
	if err := s.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, wrapNotFound(err, "food item")
	}
	return &f, nil
}

func (s *gormStore) CreateFoodItem(ctx context.Context, f *model.FoodItem) error {
	if err := s.db.WithContext(ctx).Create(f).Error; err != nil {
		return fmt.Errorf("insert food item: %w", err)
	}
	return nil
}

// SearchFoodItems matches the query case-insensitively anywhere in the
// name. An empty query yields an empty result, not the full catalog.
func (s *gormStore) SearchFoodItems(ctx context.Context, query string) ([]model.FoodItem, error) {
	if strings.TrimSpace(query) == "" {
		return []model.FoodItem{}, nil
	}
	var items []model.FoodItem
	pattern := "%" + strings.ToLower(query) + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search food items: %w", err)
	}
	return items, nil
}

// --- meals ---

func (s *gormStore) MealsByDate(ctx context.Context, userID int, date string) ([]model.Meal, error) {
	var meals []model.Meal
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&meals).Error
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

func (s *gormStore) GetMeal(ctx context.Context, id int) (*model.Meal, error) {
	var m model.Meal
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, wrapNotFound(err, "meal")
	}
	return &m, nil
}

func (s *gormStore) CreateMeal(ctx context.Context, m *model.Meal) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateMeal(ctx context.Context, m *model.Meal) error {
	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteMeal(ctx context.Context, id int) (bool, error) {
	var found bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&model.MealItem{}).Error; err != nil {
			return fmt.Errorf("delete meal items: %w", err)
		}
		res := tx.Delete(&model.Meal{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete meal: %w", res.Error)
		}
		found = res.RowsAffected > 0
		return nil
	})
	return found, err
}

// --- meal items ---

func (s *gormStore) ItemsByMeal(ctx context.Context, mealID int) ([]model.MealItem, error) {
	var items []model.MealItem
	err := s.db.WithContext(ctx).Where("meal_id = ?", mealID).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list meal items: %w", err)
	}
	return items, nil
}

func (s *gormStore) GetMealItem(ctx context.Context, id int) (*model.MealItem, error) {
	var mi model.MealItem
	if err := s.db.WithContext(ctx).First(&mi, id).Error; err != nil {
		return nil, wrapNotFound(err, "meal item")
	}
	return &mi, nil
}

func (s *gormStore) CreateMealItem(ctx context.Context, mi *model.MealItem) error {
	if err := s.db.WithContext(ctx).Create(mi).Error; err != nil {
		return fmt.Errorf("insert meal item: %w", err)
	}
	return nil
}

func (s *gormStore) UpdateMealItemQuantity(ctx context.Context, id int, quantity float64) error {
	res := s.db.WithContext(ctx).
		Model(&model.MealItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if res.Error != nil {
		return fmt.Errorf("update meal item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("meal item: %w", ErrNotFound)
	}
	return nil
}

func (s *gormStore) DeleteMealItem(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.MealItem{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete meal item: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --- daily logs ---

func (s *gormStore) GetDailyLog(ctx context.Context, userID int, date string) (*model.DailyLog, error) {
	var log model.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		return nil, wrapNotFound(err, "daily log")
	}
	return &log, nil
}

// UpsertDailyLog writes the log row for its (user, date) key, replacing
// the totals of an existing row.
func (s *gormStore) UpsertDailyLog(ctx context.Context, log *model.DailyLog) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_calories", "total_protein", "total_carbs", "total_fat",
		}),
	}).Create(log).Error
	if err != nil {
		return fmt.Errorf("upsert daily log: %w", err)
	}
	return nil
}
