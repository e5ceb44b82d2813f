package service

import (
	"testing"

	"macrolog/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"8:30 AM", "08:30"},
		{"12:30 PM", "12:30"},
		{"12:00 AM", "00:00"},
		{"12:15 am", "00:15"},
		{"1:05 PM", "13:05"},
		{"11:59 PM", "23:59"},
		{"08:00", "08:00"},
		{"8:00", "08:00"},
		{"20:30", "20:30"},
		{"7 AM", "07:00"},
		{" 9:45 PM ", "21:45"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, normalizeClock(tc.in), "input %q", tc.in)
	}
}

func TestSortMealsByTimeMixedFormats(t *testing.T) {
	meals := []model.MealWithItems{
		{Meal: model.Meal{Name: "Second", Time: "8:30 AM"}},
		{Meal: model.Meal{Name: "Third", Time: "12:30 PM"}},
		{Meal: model.Meal{Name: "First", Time: "08:00"}},
	}
	sortMealsByTime(meals)
	assert.Equal(t, "First", meals[0].Name)
	assert.Equal(t, "Second", meals[1].Name)
	assert.Equal(t, "Third", meals[2].Name)
}

func TestSortMealsByTimeStable(t *testing.T) {
	meals := []model.MealWithItems{
		{Meal: model.Meal{ID: 1, Name: "A", Time: "8:00 AM"}},
		{Meal: model.Meal{ID: 2, Name: "B", Time: "08:00"}},
	}
	sortMealsByTime(meals)
	assert.Equal(t, "A", meals[0].Name)
	assert.Equal(t, "B", meals[1].Name)
}
