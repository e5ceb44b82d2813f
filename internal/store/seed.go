package store

import (
	"context"
	"errors"
	"fmt"

	"macrolog/internal/model"

	"golang.org/x/crypto/bcrypt"
)

// defaultFoods is the starter catalog inserted on first run.
var defaultFoods = []model.FoodItem{
	{Name: "Oatmeal with banana", Calories: 320, Protein: 12, Carbs: 38, Fat: 8, ServingSize: 250, ServingUnit: "g"},
	{Name: "Greek Yogurt", Calories: 100, Protein: 12, Carbs: 4, Fat: 10, ServingSize: 100, ServingUnit: "g"},
	{Name: "Grilled Chicken Salad", Calories: 420, Protein: 38, Carbs: 20, Fat: 15, ServingSize: 350, ServingUnit: "g"},
	{Name: "Whole Grain Bread", Calories: 90, Protein: 2, Carbs: 14, Fat: 1, ServingSize: 40, ServingUnit: "g"},
	{Name: "Orange Juice", Calories: 80, Protein: 0, Carbs: 10, Fat: 5, ServingSize: 200, ServingUnit: "ml"},
	{Name: "Salmon Fillet", Calories: 250, Protein: 19, Carbs: 0, Fat: 5, ServingSize: 150, ServingUnit: "g"},
	{Name: "Steamed Vegetables", Calories: 100, Protein: 0, Carbs: 20, Fat: 0, ServingSize: 200, ServingUnit: "g"},
	{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, ServingSize: 182, ServingUnit: "g"},
	{Name: "Almonds", Calories: 160, Protein: 6, Carbs: 6, Fat: 14, ServingSize: 28, ServingUnit: "g"},
	{Name: "Brown Rice", Calories: 215, Protein: 5, Carbs: 45, Fat: 1.8, ServingSize: 195, ServingUnit: "g"},
}

// Seed inserts the starter catalog and the demo account. Safe to call on
// every startup: an already-populated catalog and an existing demo user
// are left untouched.
func Seed(ctx context.Context, st Store) error {
	existing, err := st.ListFoodItems(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) == 0 {
		for i := range defaultFoods {
			f := defaultFoods[i]
			if err := st.CreateFoodItem(ctx, &f); err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
		}
	}

	if _, err := st.GetUserByUsername(ctx, "demo"); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("seed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	demo := model.User{
		Username:     "demo",
		Password:     string(hash),
		DailyTargets: model.DefaultTargets,
	}
	if err := st.CreateUser(ctx, &demo); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	return nil
}
