package schedule

import (
	"fmt"
	"strings"
)

// TableRow is one line of the human-readable schedule grid, e.g.
// {"Monday - Friday", "7:00 AM - 2:00 PM"}.
type TableRow struct {
	DayRange string `json:"day_range"`
	Time     string `json:"time"`
}

// displayOrder is the grid's Monday-first presentation order.
var displayOrder = [...]WeekDay{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// Table renders the week as display rows, collapsing consecutive days that
// share identical hours into a single range row.
func (ws *WeeklySchedule) Table() []TableRow {
	hoursByDay := make([]string, len(displayOrder))
	for i, day := range displayOrder {
		hoursByDay[i] = ws.hoursString(day)
	}

	var rows []TableRow
	for i := 0; i < len(displayOrder); {
		j := i
		for j+1 < len(displayOrder) && hoursByDay[j+1] == hoursByDay[i] {
			j++
		}
		dayRange := displayOrder[i].String()
		if j > i {
			dayRange = fmt.Sprintf("%s - %s", displayOrder[i], displayOrder[j])
		}
		rows = append(rows, TableRow{DayRange: dayRange, Time: hoursByDay[i]})
		i = j + 1
	}
	return rows
}

func (ws *WeeklySchedule) hoursString(day WeekDay) string {
	block, ok := ws.BlockFor(day)
	if !ok || len(block.Intervals) == 0 {
		return "Closed"
	}
	parts := make([]string, len(block.Intervals))
	for i, iv := range block.Intervals {
		parts[i] = fmt.Sprintf("%s - %s", formatClock(iv.Open), formatClock(iv.Close))
	}
	return strings.Join(parts, ", ")
}

// formatClock renders an HHMM-encoded time as a 12-hour clock string.
func formatClock(hhmm int) string {
	h, m := hhmm/100, hhmm%100
	suffix := "AM"
	switch {
	case h == 0 || h == 24:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}
