package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"macrolog/internal/model"
	"macrolog/internal/service"
	"macrolog/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(db))
	st := store.NewGorm(db)

	tracker := service.NewTracker(st)
	foodH := NewFoodHandler(tracker)
	mealH := NewMealHandler(tracker)
	trackH := NewTrackerHandler(tracker)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/food-items", foodH.List)
	api.GET("/food-items/search", foodH.Search)
	api.GET("/food-items/:id", foodH.Get)
	api.POST("/food-items", foodH.Create)
	api.GET("/users/:id/meals", mealH.ListForDate)
	api.POST("/meals", mealH.Create)
	api.DELETE("/meals/:id", mealH.Delete)
	api.POST("/meal-items", mealH.CreateItem)
	api.GET("/users/:id/daily", trackH.Daily)
	api.GET("/users/:id/weekly", trackH.Weekly)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFoodItemEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/food-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/food-items", gin.H{
		"name": "Apple", "calories": 95, "protein": 0.5, "carbs": 25, "fat": 0.3,
		"servingSize": 182, "servingUnit": "g",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created model.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Positive(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/food-items/search?q=app", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var found []model.FoodItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found, 1)
	assert.Equal(t, "Apple", found[0].Name)

	// Missing nutrient field fails validation.
	w = doJSON(t, r, http.MethodPost, "/api/food-items", gin.H{
		"name": "Mystery", "calories": 100, "servingSize": 100,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/food-items/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealEndpoints(t *testing.T) {
	r, st := newTestRouter(t)
	ctx := context.Background()

	u := &model.User{Username: "demo", Password: "x", DailyTargets: model.DefaultTargets}
	require.NoError(t, st.CreateUser(ctx, u))
	f := &model.FoodItem{Name: "Oatmeal with banana", Calories: 320, Protein: 12, Carbs: 38, Fat: 8, ServingSize: 250, ServingUnit: "g"}
	require.NoError(t, st.CreateFoodItem(ctx, f))

	w := doJSON(t, r, http.MethodPost, "/api/meals", gin.H{
		"userId": u.ID, "name": "Breakfast", "date": "2024-03-10", "time": "8:00 AM",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var meal model.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))

	w = doJSON(t, r, http.MethodPost, "/api/meal-items", gin.H{
		"mealId": meal.ID, "foodItemId": f.ID, "quantity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/meal-items", gin.H{
		"mealId": meal.ID, "foodItemId": f.ID, "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/"+itoa(u.ID)+"/meals?date=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var meals []model.MealWithItems
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.InDelta(t, 320, meals[0].TotalCalories, 1e-9)

	// Listing without a date is rejected.
	w = doJSON(t, r, http.MethodGet, "/api/users/"+itoa(u.ID)+"/meals", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/meals/"+itoa(meal.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/meals/"+itoa(meal.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDailyAndWeeklyEndpoints(t *testing.T) {
	r, st := newTestRouter(t)
	ctx := context.Background()

	u := &model.User{Username: "demo", Password: "x", DailyTargets: model.DefaultTargets}
	require.NoError(t, st.CreateUser(ctx, u))

	w := doJSON(t, r, http.MethodGet, "/api/users/"+itoa(u.ID)+"/daily?date=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var daily model.DailyData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &daily))
	assert.Equal(t, "2024-03-10", daily.Date)
	assert.Empty(t, daily.Meals)
	assert.Equal(t, model.DefaultTargets, daily.Targets)

	w = doJSON(t, r, http.MethodGet, "/api/users/"+itoa(u.ID)+"/weekly?endDate=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var weekly model.WeeklyData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &weekly))
	require.Len(t, weekly.Dates, 7)
	assert.Equal(t, "2024-03-04", weekly.Dates[0])
	assert.Equal(t, "2024-03-10", weekly.Dates[6])
	assert.Len(t, weekly.Calories, 7)

	w = doJSON(t, r, http.MethodGet, "/api/users/9999/daily?date=2024-03-10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/users/"+itoa(u.ID)+"/daily?date=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func itoa(n int) string { return strconv.Itoa(n) }
