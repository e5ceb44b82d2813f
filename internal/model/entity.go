package model

// Targets is a user's per-nutrient daily goal. Stored denormalized on the
// users table so a profile read never needs a join.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultTargets applies when a user is created without explicit goals.
var DefaultTargets = Targets{Calories: 2000, Protein: 120, Carbs: 250, Fat: 65}

type User struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"uniqueIndex" json:"username"`
	Password     string  `json:"-"`
	DailyTargets Targets `gorm:"embedded;embeddedPrefix:target_" json:"dailyTargets"`
}

// FoodItem is a catalog entry. Nutrient values are per one serving.
// The catalog is append-only; nothing in the system deletes entries.
type FoodItem struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
}

// Meal is a named eating occasion. Date is ISO YYYY-MM-DD; Time is a
// free-text display string in either 12-hour or 24-hour form.
type Meal struct {
	ID     int    `gorm:"primaryKey" json:"id"`
	UserID int    `gorm:"index:idx_meals_user_date" json:"userId"`
	Name   string `json:"name"`
	Date   string `gorm:"type:date;index:idx_meals_user_date" json:"date"`
	Time   string `json:"time"`
}

// MealItem links a meal to a food item. Quantity is a serving multiple.
type MealItem struct {
	ID         int     `gorm:"primaryKey" json:"id"`
	MealID     int     `gorm:"index" json:"mealId"`
	FoodItemID int     `json:"foodItemId"`
	Quantity   float64 `json:"quantity"`
}

// DailyLog caches one user's nutrient totals for one date. It is written
// only by the tracker's recompute; its totals always equal the sum of the
// day's meal totals.
type DailyLog struct {
	ID            int     `gorm:"primaryKey" json:"id"`
	UserID        int     `gorm:"uniqueIndex:uk_daily_logs_user_date" json:"userId"`
	Date          string  `gorm:"type:date;uniqueIndex:uk_daily_logs_user_date" json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFat      float64 `json:"totalFat"`
}

func (User) TableName() string     { return "users" }
func (FoodItem) TableName() string { return "food_items" }
func (Meal) TableName() string     { return "meals" }
func (MealItem) TableName() string { return "meal_items" }
func (DailyLog) TableName() string { return "daily_logs" }
