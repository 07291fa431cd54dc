package schedule

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// lookaheadDays bounds the forward scan for the next opening so it always
// terminates, even for a schedule that is closed all week.
const lookaheadDays = 7

// ClosedMessage is the terminal status when no opening exists within the
// lookahead window.
const ClosedMessage = "Closed."

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// IsOpenAt reports whether the schedule is open at now. Intervals are
// half-open: at the exact close instant the location is already closed.
func (ws *WeeklySchedule) IsOpenAt(now time.Time) bool {
	block, ok := ws.BlockFor(WeekDayOf(now))
	if !ok {
		return false
	}
	nowMin := minutesOfDay(now)
	for _, iv := range block.Intervals {
		if iv.Contains(nowMin) {
			return true
		}
	}
	return false
}

// StatusMessageAt renders the human status line for now: time until close
// while open, time until the next opening while closed, or ClosedMessage
// when no opening exists in the next week.
func (ws *WeeklySchedule) StatusMessageAt(now time.Time) string {
	minutes, open, found := ws.nextTransition(now)
	switch {
	case !found:
		return ClosedMessage
	case open:
		return "Closes in " + formatSpan(minutes)
	default:
		return "Opens in " + formatSpan(minutes)
	}
}

// MinutesUntilTransition returns the minutes until the schedule next flips
// state, and whether it is currently open. found is false when the schedule
// has no opening within the lookahead window.
func (ws *WeeklySchedule) MinutesUntilTransition(now time.Time) (minutes int, open bool, found bool) {
	return ws.nextTransition(now)
}

func (ws *WeeklySchedule) nextTransition(now time.Time) (minutes int, open bool, found bool) {
	nowMin := minutesOfDay(now)
	today := WeekDayOf(now)

	if block, ok := ws.BlockFor(today); ok {
		for _, iv := range block.Intervals {
			if iv.Contains(nowMin) {
				return iv.CloseMinutes() - nowMin, true, true
			}
		}
		// Closed now; earliest remaining opening today.
		next := -1
		for _, iv := range block.Intervals {
			if m := iv.OpenMinutes(); m > nowMin && (next < 0 || m < next) {
				next = m
			}
		}
		if next >= 0 {
			return next - nowMin, false, true
		}
	}

	// Walk forward day by day. Days with an explicitly empty block are
	// skipped the same as unconfigured days, so a multi-day closure still
	// reports the real next opening.
	for offset := 1; offset <= lookaheadDays; offset++ {
		block, ok := ws.BlockFor(today.Add(offset))
		if !ok || len(block.Intervals) == 0 {
			continue
		}
		earliest := block.Intervals[0].OpenMinutes()
		for _, iv := range block.Intervals[1:] {
			if m := iv.OpenMinutes(); m < earliest {
				earliest = m
			}
		}
		return offset*minutesPerDay - nowMin + earliest, false, true
	}

	return 0, false, false
}

// formatSpan renders a span of minutes as the largest sensible unit:
// minutes under an hour, hours (rounded up) under a day, whole days
// (rounded up) beyond that.
func formatSpan(minutes int) string {
	if minutes < 60 {
		return pluralize(minutes, "minute")
	}
	hours := (minutes + 59) / 60
	if hours >= 24 {
		return pluralize((hours+23)/24, "day")
	}
	return pluralize(hours, "hour")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
