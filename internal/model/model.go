package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateUserRequest struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	DailyTargets *Targets `json:"dailyTargets,omitempty"`
}

// CreateFoodItemRequest uses pointers for the nutrient fields so a missing
// field can be told apart from an explicit zero.
type CreateFoodItemRequest struct {
	Name        string   `json:"name"`
	Calories    *float64 `json:"calories"`
	Protein     *float64 `json:"protein"`
	Carbs       *float64 `json:"carbs"`
	Fat         *float64 `json:"fat"`
	ServingSize *float64 `json:"servingSize"`
	ServingUnit string   `json:"servingUnit"`
}

type CreateMealRequest struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// UpdateMealRequest carries only the fields present in the request body.
type UpdateMealRequest struct {
	Name *string `json:"name,omitempty"`
	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`
}

type CreateMealItemRequest struct {
	MealID     int     `json:"mealId"`
	FoodItemID int     `json:"foodItemId"`
	Quantity   float64 `json:"quantity"`
}

type UpdateMealItemRequest struct {
	Quantity float64 `json:"quantity"`
}

// MealItemWithFood is a meal line entry joined to its catalog food.
type MealItemWithFood struct {
	MealItem
	FoodItem FoodItem `json:"foodItem"`
}

// MealWithItems is a meal with its joined line entries and computed
// nutrient totals. Totals are derived at read time, never stored.
type MealWithItems struct {
	Meal
	Items         []MealItemWithFood `json:"items"`
	TotalCalories float64            `json:"totalCalories"`
	TotalProtein  float64            `json:"totalProtein"`
	TotalCarbs    float64            `json:"totalCarbs"`
	TotalFat      float64            `json:"totalFat"`
}

// Totals is the nutrient envelope of one day.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyData is the composite read for one user and date: the day's meals
// with totals, the cached daily log, and the user's targets.
type DailyData struct {
	Date    string          `json:"date"`
	Meals   []MealWithItems `json:"meals"`
	Totals  Totals          `json:"totals"`
	Targets Targets         `json:"targets"`
}

// WeeklyData is a 7-point rolling calorie series, index-aligned: Dates[i]
// pairs with Calories[i]. Dates ascend and end at the requested end date.
type WeeklyData struct {
	Dates    []string  `json:"dates"`
	Calories []float64 `json:"calories"`
	Target   float64   `json:"target"`
}
