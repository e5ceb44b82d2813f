package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"macrolog/internal/model"
	"macrolog/internal/store"
)

const dateLayout = "2006-01-02"

// fallbackTargetCalories is charted when a user carries no usable
// calorie target.
const fallbackTargetCalories = 2000

// Tracker is the aggregation core: it owns every read and write of
// meals, meal items and daily logs, and keeps the denormalized daily
// totals consistent with the underlying line entries. The daily log for
// a (user, date) key is always recomputed in full from the day's meals,
// never patched incrementally; that keeps the cached totals drift-free
// at a cost that stays trivial for a handful of meals per day.
type Tracker struct {
	store store.Store

	mu       sync.Mutex
	dayLocks map[string]*sync.Mutex
}

func NewTracker(st store.Store) *Tracker {
	return &Tracker{store: st, dayLocks: make(map[string]*sync.Mutex)}
}

// dayLock serializes recomputes per (user, date) key so two concurrent
// item mutations for the same day cannot interleave the read-recompute-
// write sequence and lose an update. Different days never contend.
func (t *Tracker) dayLock(userID int, date string) *sync.Mutex {
	key := fmt.Sprintf("%d/%s", userID, date)
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.dayLocks[key]
	if !ok {
		l = &sync.Mutex{}
		t.dayLocks[key] = l
	}
	return l
}

func validDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalid("date", "must be YYYY-MM-DD")
	}
	return nil
}

// --- food catalog ---

func (t *Tracker) ListFoodItems(ctx context.Context) ([]model.FoodItem, error) {
	return t.store.ListFoodItems(ctx)
}

func (t *Tracker) GetFoodItem(ctx context.Context, id int) (*model.FoodItem, error) {
	f, err := t.store.GetFoodItem(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrFoodItemNotFound
	}
	return f, err
}

func (t *Tracker) SearchFoodItems(ctx context.Context, query string) ([]model.FoodItem, error) {
	return t.store.SearchFoodItems(ctx, query)
}

// CreateFoodItem validates and inserts a catalog entry. Duplicate names
// are allowed; the catalog has no uniqueness beyond the id.
func (t *Tracker) CreateFoodItem(ctx context.Context, req model.CreateFoodItemRequest) (*model.FoodItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	nutrients := map[string]*float64{
		"calories": req.Calories,
		"protein":  req.Protein,
		"carbs":    req.Carbs,
		"fat":      req.Fat,
	}
	for field, v := range nutrients {
		if v == nil {
			return nil, invalid(field, "is required")
		}
		if *v < 0 {
			return nil, invalid(field, "must not be negative")
		}
	}
	if req.ServingSize == nil {
		return nil, invalid("servingSize", "is required")
	}
	if *req.ServingSize <= 0 {
		return nil, invalid("servingSize", "must be positive")
	}

	f := model.FoodItem{
		Name:        req.Name,
		Calories:    *req.Calories,
		Protein:     *req.Protein,
		Carbs:       *req.Carbs,
		Fat:         *req.Fat,
		ServingSize: *req.ServingSize,
		ServingUnit: req.ServingUnit,
	}
	if err := t.store.CreateFoodItem(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// --- meals ---

// buildMeal joins a meal to its items and food entries and computes the
// nutrient totals. A line entry whose food item is missing is a data
// integrity fault (the catalog is append-only) and fails loudly rather
// than producing silent garbage.
func (t *Tracker) buildMeal(ctx context.Context, m model.Meal) (model.MealWithItems, error) {
	out := model.MealWithItems{Meal: m, Items: []model.MealItemWithFood{}}

	items, err := t.store.ItemsByMeal(ctx, m.ID)
	if err != nil {
		return out, err
	}
	for _, it := range items {
		food, err := t.store.GetFoodItem(ctx, it.FoodItemID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return out, fmt.Errorf("meal %d item %d references missing food item %d", m.ID, it.ID, it.FoodItemID)
			}
			return out, err
		}
		out.Items = append(out.Items, model.MealItemWithFood{MealItem: it, FoodItem: *food})
		out.TotalCalories += food.Calories * it.Quantity
		out.TotalProtein += food.Protein * it.Quantity
		out.TotalCarbs += food.Carbs * it.Quantity
		out.TotalFat += food.Fat * it.Quantity
	}
	return out, nil
}

// MealsForDate returns the day's meals with items and totals, sorted
// chronologically by normalized meal time.
func (t *Tracker) MealsForDate(ctx context.Context, userID int, date string) ([]model.MealWithItems, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	meals, err := t.store.MealsByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	out := make([]model.MealWithItems, 0, len(meals))
	for _, m := range meals {
		mw, err := t.buildMeal(ctx, m)
		if err != nil {
			return nil, err
		}
		out = append(out, mw)
	}
	sortMealsByTime(out)
	return out, nil
}

func (t *Tracker) GetMeal(ctx context.Context, id int) (*model.MealWithItems, error) {
	m, err := t.store.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	mw, err := t.buildMeal(ctx, *m)
	if err != nil {
		return nil, err
	}
	return &mw, nil
}

func (t *Tracker) CreateMeal(ctx context.Context, req model.CreateMealRequest) (*model.Meal, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name", "must not be empty")
	}
	if err := validDate(req.Date); err != nil {
		return nil, err
	}
	if _, err := t.store.GetUser(ctx, req.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	m := model.Meal{UserID: req.UserID, Name: req.Name, Date: req.Date, Time: req.Time}
	if err := t.store.CreateMeal(ctx, &m); err != nil {
		return nil, err
	}
	// A fresh meal has no items and contributes zero; no recompute needed.
	return &m, nil
}

// UpdateMeal patches name/date/time. Moving a meal to another date shifts
// its items' contribution between two daily logs, so both days are
// recomputed.
func (t *Tracker) UpdateMeal(ctx context.Context, id int, req model.UpdateMealRequest) (*model.Meal, error) {
	m, err := t.store.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}

	oldDate := m.Date
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name", "must not be empty")
		}
		m.Name = *req.Name
	}
	if req.Date != nil {
		if err := validDate(*req.Date); err != nil {
			return nil, err
		}
		m.Date = *req.Date
	}
	if req.Time != nil {
		m.Time = *req.Time
	}
	if err := t.store.UpdateMeal(ctx, m); err != nil {
		return nil, err
	}

	if m.Date != oldDate {
		if err := t.Recompute(ctx, m.UserID, oldDate); err != nil {
			return nil, err
		}
		if err := t.Recompute(ctx, m.UserID, m.Date); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// DeleteMeal removes the meal and its items, then brings the day's log
// back in line with what remains.
func (t *Tracker) DeleteMeal(ctx context.Context, id int) (bool, error) {
	m, err := t.store.GetMeal(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	found, err := t.store.DeleteMeal(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		if err := t.Recompute(ctx, m.UserID, m.Date); err != nil {
			return false, err
		}
	}
	return found, nil
}

// --- meal items ---

// CreateMealItem appends a line entry to a meal. Both foreign references
// must exist and the quantity must be positive; the owning day's log is
// recomputed before returning.
func (t *Tracker) CreateMealItem(ctx context.Context, req model.CreateMealItemRequest) (*model.MealItem, error) {
	if req.Quantity <= 0 {
		return nil, invalid("quantity", "must be positive")
	}
	m, err := t.store.GetMeal(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if _, err := t.store.GetFoodItem(ctx, req.FoodItemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrFoodItemNotFound
		}
		return nil, err
	}

	mi := model.MealItem{MealID: req.MealID, FoodItemID: req.FoodItemID, Quantity: req.Quantity}
	if err := t.store.CreateMealItem(ctx, &mi); err != nil {
		return nil, err
	}
	if err := t.Recompute(ctx, m.UserID, m.Date); err != nil {
		return nil, err
	}
	return &mi, nil
}

func (t *Tracker) UpdateMealItemQuantity(ctx context.Context, id int, quantity float64) (*model.MealItem, error) {
	if quantity <= 0 {
		return nil, invalid("quantity", "must be positive")
	}
	mi, err := t.store.GetMealItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMealItemNotFound
		}
		return nil, err
	}
	if err := t.store.UpdateMealItemQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMealItemNotFound
		}
		return nil, err
	}
	mi.Quantity = quantity

	m, err := t.store.GetMeal(ctx, mi.MealID)
	if err == nil {
		if err := t.Recompute(ctx, m.UserID, m.Date); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return mi, nil
}

// DeleteMealItem removes a line entry and reports whether it existed.
// When the parent meal has already been deleted the recompute is skipped;
// the cascade that removed the meal has already settled the log.
func (t *Tracker) DeleteMealItem(ctx context.Context, id int) (bool, error) {
	mi, err := t.store.GetMealItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	found, err := t.store.DeleteMealItem(ctx, id)
	if err != nil || !found {
		return found, err
	}

	m, err := t.store.GetMeal(ctx, mi.MealID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return true, nil
		}
		return true, err
	}
	if err := t.Recompute(ctx, m.UserID, m.Date); err != nil {
		return true, err
	}
	return true, nil
}

// --- daily logs ---

// Recompute rebuilds the daily log for (userID, date) from scratch by
// summing every meal of the day. This is the sole write path for daily
// logs.
func (t *Tracker) Recompute(ctx context.Context, userID int, date string) error {
	l := t.dayLock(userID, date)
	l.Lock()
	defer l.Unlock()

	meals, err := t.store.MealsByDate(ctx, userID, date)
	if err != nil {
		return err
	}
	log := model.DailyLog{UserID: userID, Date: date}
	for _, m := range meals {
		mw, err := t.buildMeal(ctx, m)
		if err != nil {
			return err
		}
		log.TotalCalories += mw.TotalCalories
		log.TotalProtein += mw.TotalProtein
		log.TotalCarbs += mw.TotalCarbs
		log.TotalFat += mw.TotalFat
	}
	return t.store.UpsertDailyLog(ctx, &log)
}

// DailyLog returns the cached totals for the date, or a zero-valued log
// when the user has logged nothing yet.
func (t *Tracker) DailyLog(ctx context.Context, userID int, date string) (*model.DailyLog, error) {
	log, err := t.store.GetDailyLog(ctx, userID, date)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &model.DailyLog{UserID: userID, Date: date}, nil
		}
		return nil, err
	}
	return log, nil
}

// DailyData is the composite read for one user and date.
func (t *Tracker) DailyData(ctx context.Context, userID int, date string) (*model.DailyData, error) {
	if err := validDate(date); err != nil {
		return nil, err
	}
	user, err := t.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	meals, err := t.MealsForDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	log, err := t.DailyLog(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &model.DailyData{
		Date:  date,
		Meals: meals,
		Totals: model.Totals{
			Calories: log.TotalCalories,
			Protein:  log.TotalProtein,
			Carbs:    log.TotalCarbs,
			Fat:      log.TotalFat,
		},
		Targets: user.DailyTargets,
	}, nil
}

// WeeklyData builds the 7-day rolling calorie series ending at endDate
// inclusive, ascending, with zeros for days without a log. A missing
// user is NotFound, matching DailyData; the 2000 fallback only covers a
// user whose stored calorie target is unusable.
func (t *Tracker) WeeklyData(ctx context.Context, userID int, endDate string) (*model.WeeklyData, error) {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, invalid("endDate", "must be YYYY-MM-DD")
	}
	user, err := t.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	target := user.DailyTargets.Calories
	if target <= 0 {
		target = fallbackTargetCalories
	}

	week := model.WeeklyData{
		Dates:    make([]string, 0, 7),
		Calories: make([]float64, 0, 7),
		Target:   target,
	}
	for i := 6; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format(dateLayout)
		log, err := t.DailyLog(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		week.Dates = append(week.Dates, date)
		week.Calories = append(week.Calories, log.TotalCalories)
	}
	return &week, nil
}
