package services

import (
	"log"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
)

// staticSchedules is the compiled-in hours table for locations whose remote
// rows are not granular enough, today that means the coffee shops. Keyed by
// location name as published by the remote source.
var staticSchedules = map[string][]schedule.OpeningHours{
	"Jester Java": {
		{
			Days: []schedule.WeekDay{
				schedule.Monday, schedule.Tuesday, schedule.Wednesday,
				schedule.Thursday, schedule.Friday,
			},
			Intervals: []schedule.TimeInterval{{Open: 700, Close: 1700}},
		},
		{
			Days:      []schedule.WeekDay{schedule.Saturday, schedule.Sunday},
			Intervals: []schedule.TimeInterval{},
		},
	},
	"Prufrock's": {
		{
			Days: []schedule.WeekDay{
				schedule.Monday, schedule.Tuesday, schedule.Wednesday,
				schedule.Thursday,
			},
			Intervals: []schedule.TimeInterval{{Open: 800, Close: 2100}},
		},
		{
			Days:      []schedule.WeekDay{schedule.Friday},
			Intervals: []schedule.TimeInterval{{Open: 800, Close: 1700}},
		},
		{
			Days:      []schedule.WeekDay{schedule.Sunday},
			Intervals: []schedule.TimeInterval{{Open: 1300, Close: 2100}},
		},
	},
	"Union Coffee House": {
		{
			Days: []schedule.WeekDay{
				schedule.Monday, schedule.Tuesday, schedule.Wednesday,
				schedule.Thursday, schedule.Friday,
			},
			Intervals: []schedule.TimeInterval{
				{Open: 730, Close: 1100},
				{Open: 1130, Close: 1600},
			},
		},
	},
}

// compiled holds the validated form; building it once at startup surfaces a
// bad static table immediately instead of at first lookup.
var compiledStaticSchedules = compileStaticSchedules()

func compileStaticSchedules() map[string]*schedule.WeeklySchedule {
	out := make(map[string]*schedule.WeeklySchedule, len(staticSchedules))
	for name, blocks := range staticSchedules {
		ws, err := schedule.NewWeeklySchedule(blocks)
		if err != nil {
			log.Fatalf("[StaticSchedules] Invalid static schedule for %q: %v", name, err)
		}
		out[name] = ws
	}
	return out
}

// StaticScheduleFor returns the compiled-in schedule for a location name,
// ok=false when the location has no static entry.
func StaticScheduleFor(name string) (*schedule.WeeklySchedule, bool) {
	ws, ok := compiledStaticSchedules[name]
	return ws, ok
}
