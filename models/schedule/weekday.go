package schedule

import "time"

// WeekDay is the atomic unit of scheduling. Values align with time.Weekday
// so conversion is a plain cast.
type WeekDay int

const (
	Sunday WeekDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekDayNames = [...]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d WeekDay) String() string {
	if d < Sunday || d > Saturday {
		return "Unknown"
	}
	return weekDayNames[d]
}

// Add steps forward by offset days, wrapping around the week.
func (d WeekDay) Add(offset int) WeekDay {
	return WeekDay((int(d) + offset) % 7)
}

// WeekDayOf returns the weekday of t in t's own location.
func WeekDayOf(t time.Time) WeekDay {
	return WeekDay(t.Weekday())
}
