package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportWorkbook renders a spreadsheet for one day of logged nutrition
// plus the surrounding 7-day calorie series, for download from the
// reports page.
func (t *Tracker) ExportWorkbook(ctx context.Context, userID int, date string) (*excelize.File, error) {
	daily, err := t.DailyData(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	week, err := t.WeeklyData(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := "Daily Log"
	f.SetSheetName("Sheet1", sheet)

	row := 1
	set := func(col string, r int, v any) {
		f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r), v)
	}

	set("A", row, "Date")
	set("B", row, daily.Date)
	row += 2

	set("A", row, "Meal")
	set("B", row, "Food")
	set("C", row, "Quantity")
	set("D", row, "Calories")
	set("E", row, "Protein (g)")
	set("F", row, "Carbs (g)")
	set("G", row, "Fat (g)")
	row++

	for _, meal := range daily.Meals {
		for _, item := range meal.Items {
			set("A", row, fmt.Sprintf("%s (%s)", meal.Name, meal.Time))
			set("B", row, item.FoodItem.Name)
			set("C", row, item.Quantity)
			set("D", row, item.FoodItem.Calories*item.Quantity)
			set("E", row, item.FoodItem.Protein*item.Quantity)
			set("F", row, item.FoodItem.Carbs*item.Quantity)
			set("G", row, item.FoodItem.Fat*item.Quantity)
			row++
		}
	}

	row++
	set("A", row, "Totals")
	set("D", row, daily.Totals.Calories)
	set("E", row, daily.Totals.Protein)
	set("F", row, daily.Totals.Carbs)
	set("G", row, daily.Totals.Fat)
	row++
	set("A", row, "Targets")
	set("D", row, daily.Targets.Calories)
	set("E", row, daily.Targets.Protein)
	set("F", row, daily.Targets.Carbs)
	set("G", row, daily.Targets.Fat)

	weekSheet := "Week"
	if _, err := f.NewSheet(weekSheet); err != nil {
		return nil, fmt.Errorf("create week sheet: %w", err)
	}
	f.SetCellValue(weekSheet, "A1", "Date")
	f.SetCellValue(weekSheet, "B1", "Calories")
	f.SetCellValue(weekSheet, "C1", "Target")
	for i, d := range week.Dates {
		r := i + 2
		f.SetCellValue(weekSheet, fmt.Sprintf("A%d", r), d)
		f.SetCellValue(weekSheet, fmt.Sprintf("B%d", r), week.Calories[i])
		f.SetCellValue(weekSheet, fmt.Sprintf("C%d", r), week.Target)
	}

	return f, nil
}
