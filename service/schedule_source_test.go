package services

import (
	"testing"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models"
	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
)

func TestParseServiceHours(t *testing.T) {
	ws, err := ParseServiceHours(`{
		"monday": [{"open": 700, "close": 1400}],
		"tuesday": [{"open": 700, "close": 1100}, {"open": 1700, "close": 2000}],
		"saturday": []
	}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	block, ok := ws.BlockFor(schedule.Tuesday)
	if !ok || len(block.Intervals) != 2 {
		t.Fatalf("Unexpected Tuesday block: %+v (ok=%v)", block, ok)
	}

	// An explicitly empty day is a found block with no windows.
	block, ok = ws.BlockFor(schedule.Saturday)
	if !ok || len(block.Intervals) != 0 {
		t.Errorf("Expected an empty Saturday block, got %+v (ok=%v)", block, ok)
	}

	// A missing day has no block.
	if _, ok := ws.BlockFor(schedule.Sunday); ok {
		t.Error("Expected no block for Sunday")
	}
}

func TestParseServiceHours_Errors(t *testing.T) {
	if _, err := ParseServiceHours(`{"monday": [`); err == nil {
		t.Error("Expected an error for malformed JSON")
	}
	if _, err := ParseServiceHours(`{"funday": [{"open": 700, "close": 1400}]}`); err == nil {
		t.Error("Expected an error for an unknown weekday name")
	}
	if _, err := ParseServiceHours(`{"monday": [{"open": 1400, "close": 700}]}`); err == nil {
		t.Error("Expected an error for an inverted interval")
	}
}

func TestParseServiceHours_EmptyInput(t *testing.T) {
	ws, err := ParseServiceHours("")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ws.Blocks()) != 0 {
		t.Errorf("Expected an empty schedule, got %+v", ws.Blocks())
	}
}

func TestParseMealTimes(t *testing.T) {
	ws, err := ParseMealTimes(`{
		"monday": [
			{"name": "Breakfast", "open": 700, "close": 1000},
			{"name": "Lunch", "open": 1100, "close": 1400}
		]
	}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	block, ok := ws.BlockFor(schedule.Monday)
	if !ok || len(block.Intervals) != 2 {
		t.Fatalf("Unexpected Monday block: %+v (ok=%v)", block, ok)
	}
	if block.Intervals[0].Open != 700 || block.Intervals[1].Close != 1400 {
		t.Errorf("Meal windows not carried over: %+v", block.Intervals)
	}
}

func TestMealTimesFor(t *testing.T) {
	loc := &models.Location{
		Name: "J2 Dining",
		MealTimes: `{
			"monday": [
				{"name": "Breakfast", "open": 700, "close": 1000},
				{"name": "Lunch", "open": 1100, "close": 1400}
			]
		}`,
	}

	meals, err := MealTimesFor(loc, schedule.Monday)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(meals) != 2 || meals[0].Name != "Breakfast" || meals[1].Name != "Lunch" {
		t.Errorf("Unexpected meal windows: %+v", meals)
	}

	meals, err = MealTimesFor(loc, schedule.Tuesday)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if meals != nil {
		t.Errorf("Expected no meals for Tuesday, got %+v", meals)
	}
}

func TestResolveSchedule_Precedence(t *testing.T) {
	mealTimes := `{"monday": [{"name": "Lunch", "open": 1100, "close": 1400}]}`

	// Service hours win over meal times when both are present.
	loc := &models.Location{
		Name:         "J2 Dining",
		ServiceHours: `{"monday": [{"open": 700, "close": 2000}]}`,
		MealTimes:    mealTimes,
	}
	ws := ResolveSchedule(loc)
	block, ok := ws.BlockFor(schedule.Monday)
	if !ok || block.Intervals[0].Close != 2000 {
		t.Errorf("Expected service hours to take precedence, got %+v", block)
	}

	// Meal times serve when they are the only source.
	loc = &models.Location{Name: "Jester City Market", MealTimes: mealTimes}
	ws = ResolveSchedule(loc)
	block, ok = ws.BlockFor(schedule.Monday)
	if !ok || block.Intervals[0].Open != 1100 {
		t.Errorf("Expected meal times fallback, got %+v", block)
	}

	// The static table beats anything synced.
	loc = &models.Location{
		Name:         "Jester Java",
		ServiceHours: `{"monday": [{"open": 100, "close": 200}]}`,
	}
	ws = ResolveSchedule(loc)
	block, ok = ws.BlockFor(schedule.Monday)
	if !ok || block.Intervals[0].Open != 700 {
		t.Errorf("Expected the static schedule to win, got %+v", block)
	}

	// No source at all means closed all week.
	loc = &models.Location{Name: "Mystery Kitchen"}
	if got := len(ResolveSchedule(loc).Blocks()); got != 0 {
		t.Errorf("Expected an empty schedule, got %d blocks", got)
	}
}

func TestResolveSchedule_MalformedDegradesToClosed(t *testing.T) {
	loc := &models.Location{Name: "Broken Grill", ServiceHours: `{"monday": [`}
	ws := ResolveSchedule(loc)
	if len(ws.Blocks()) != 0 {
		t.Errorf("Expected malformed hours to resolve empty, got %+v", ws.Blocks())
	}

	loc = &models.Location{Name: "Broken Cafe", MealTimes: `not json`}
	ws = ResolveSchedule(loc)
	if len(ws.Blocks()) != 0 {
		t.Errorf("Expected malformed meal times to resolve empty, got %+v", ws.Blocks())
	}
}

func TestStaticScheduleFor(t *testing.T) {
	if _, ok := StaticScheduleFor("Jester Java"); !ok {
		t.Error("Expected a static schedule for Jester Java")
	}
	if _, ok := StaticScheduleFor("J2 Dining"); ok {
		t.Error("Expected no static schedule for a dining hall")
	}
}
