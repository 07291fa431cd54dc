package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
)

// Two schedule representations exist upstream: the compiled-in static
// tables (coffee shops, where remote data is not granular enough) and the
// service-hours / meal-times JSON synced onto location rows. Both adapt
// into schedule.WeeklySchedule here so the evaluator never special-cases
// the source.

var dayNames = map[string]schedule.WeekDay{
	"sunday":    schedule.Sunday,
	"monday":    schedule.Monday,
	"tuesday":   schedule.Tuesday,
	"wednesday": schedule.Wednesday,
	"thursday":  schedule.Thursday,
	"friday":    schedule.Friday,
	"saturday":  schedule.Saturday,
}

// serviceHoursDoc is the synced regular_service_hours blob: weekday name to
// service windows. A day mapped to an empty list is explicitly closed; a
// missing day has no block at all.
type serviceHoursDoc map[string][]schedule.TimeInterval

// mealTimesDoc is the synced meal_times blob: weekday name to named
// windows (Breakfast, Lunch, ...).
type mealTimesDoc map[string][]models.MealTime

// ParseServiceHours adapts a regular_service_hours JSON blob into a
// normalized weekly schedule.
func ParseServiceHours(raw string) (*schedule.WeeklySchedule, error) {
	if raw == "" {
		return schedule.EmptySchedule(), nil
	}
	var doc serviceHoursDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("malformed service hours: %w", err)
	}
	blocks := make([]schedule.OpeningHours, 0, len(doc))
	for name, intervals := range doc {
		day, ok := dayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in service hours", name)
		}
		blocks = append(blocks, schedule.OpeningHours{
			Days:      []schedule.WeekDay{day},
			Intervals: intervals,
		})
	}
	// Map iteration order is random; keep block order deterministic.
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Days[0] < blocks[j].Days[0] })
	return schedule.NewWeeklySchedule(blocks)
}

// ParseMealTimes adapts a meal_times JSON blob into a weekly schedule by
// dropping the window names.
func ParseMealTimes(raw string) (*schedule.WeeklySchedule, error) {
	if raw == "" {
		return schedule.EmptySchedule(), nil
	}
	var doc mealTimesDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("malformed meal times: %w", err)
	}
	blocks := make([]schedule.OpeningHours, 0, len(doc))
	for name, meals := range doc {
		day, ok := dayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in meal times", name)
		}
		intervals := make([]schedule.TimeInterval, len(meals))
		for i, m := range meals {
			intervals[i] = schedule.TimeInterval{Open: m.Open, Close: m.Close}
		}
		blocks = append(blocks, schedule.OpeningHours{
			Days:      []schedule.WeekDay{day},
			Intervals: intervals,
		})
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Days[0] < blocks[j].Days[0] })
	return schedule.NewWeeklySchedule(blocks)
}

// MealTimesFor returns the named meal windows for one weekday, for display.
func MealTimesFor(loc *models.Location, day schedule.WeekDay) ([]models.MealTime, error) {
	if loc.MealTimes == "" {
		return nil, nil
	}
	var doc mealTimesDoc
	if err := json.Unmarshal([]byte(loc.MealTimes), &doc); err != nil {
		return nil, fmt.Errorf("malformed meal times: %w", err)
	}
	for name, meals := range doc {
		if dayNames[name] == day && len(meals) > 0 {
			return meals, nil
		}
	}
	return nil, nil
}

// ResolveSchedule picks the schedule source for a location: the static
// table wins when present, then synced service hours, then meal times.
// A location without any source is closed at all times. Malformed synced
// blobs degrade to closed rather than failing the caller.
func ResolveSchedule(loc *models.Location) *schedule.WeeklySchedule {
	if ws, ok := StaticScheduleFor(loc.Name); ok {
		return ws
	}
	if loc.ServiceHours != "" {
		ws, err := ParseServiceHours(loc.ServiceHours)
		if err != nil {
			log.Printf("[ScheduleSource] Bad service hours for %q: %v", loc.Name, err)
			return schedule.EmptySchedule()
		}
		return ws
	}
	if loc.MealTimes != "" {
		ws, err := ParseMealTimes(loc.MealTimes)
		if err != nil {
			log.Printf("[ScheduleSource] Bad meal times for %q: %v", loc.Name, err)
			return schedule.EmptySchedule()
		}
		return ws
	}
	return schedule.EmptySchedule()
}
