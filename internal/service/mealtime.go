package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"macrolog/internal/model"
)

// normalizeClock converts a free-text meal time to zero-padded 24-hour
// "HH:MM" so plain string comparison sorts chronologically. Both stored
// forms are accepted: 12-hour ("8:30 AM") and 24-hour ("20:30"). Hour 12
// maps to 00 in the AM half; PM adds 12 except for 12 PM itself.
func normalizeClock(t string) string {
	s := strings.TrimSpace(t)
	upper := strings.ToUpper(s)

	var pm bool
	switch {
	case strings.HasSuffix(upper, "AM"):
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "PM"):
		pm = true
		s = strings.TrimSpace(s[:len(s)-2])
	default:
		// Already 24-hour; just zero-pad a single-digit hour.
		if i := strings.Index(s, ":"); i == 1 {
			return "0" + s
		}
		return s
	}

	hourStr, minutes, ok := strings.Cut(s, ":")
	if !ok {
		minutes = "00"
		hourStr = s
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return t
	}
	if hour == 12 {
		hour = 0
	}
	if pm {
		hour += 12
	}
	return fmt.Sprintf("%02d:%s", hour, minutes)
}

// sortMealsByTime orders meals chronologically by their normalized time.
func sortMealsByTime(meals []model.MealWithItems) {
	sort.SliceStable(meals, func(i, j int) bool {
		return normalizeClock(meals[i].Time) < normalizeClock(meals[j].Time)
	})
}
