package schedule

import "fmt"

// OpeningHours is one schedule block: a set of weekdays sharing the same
// service windows. An empty Intervals list means closed all day for those
// days, which is distinct from a day having no block at all.
type OpeningHours struct {
	Days      []WeekDay      `json:"days"`
	Intervals []TimeInterval `json:"intervals"`
}

// WeeklySchedule is a location's full week of opening hours, normalized so
// the evaluator never cares whether the blocks came from the static table or
// from synced service-hours rows.
type WeeklySchedule struct {
	blocks []OpeningHours
}

// NewWeeklySchedule validates and assembles schedule blocks. Each weekday
// may appear in at most one block; overlapping day sets are rejected here
// rather than resolved first-match-wins at evaluation time.
func NewWeeklySchedule(blocks []OpeningHours) (*WeeklySchedule, error) {
	seen := make(map[WeekDay]bool, 7)
	for _, block := range blocks {
		for _, day := range block.Days {
			if day < Sunday || day > Saturday {
				return nil, fmt.Errorf("invalid weekday %d in schedule block", day)
			}
			if seen[day] {
				return nil, fmt.Errorf("%s appears in more than one schedule block", day)
			}
			seen[day] = true
		}
		for _, iv := range block.Intervals {
			if !iv.Valid() {
				return nil, fmt.Errorf("invalid interval %d-%d on %v", iv.Open, iv.Close, block.Days)
			}
		}
	}
	return &WeeklySchedule{blocks: blocks}, nil
}

// EmptySchedule is a week with no blocks configured: closed at all times.
func EmptySchedule() *WeeklySchedule {
	return &WeeklySchedule{}
}

// BlockFor returns the schedule block covering day, or ok=false if none is
// configured for it.
func (ws *WeeklySchedule) BlockFor(day WeekDay) (OpeningHours, bool) {
	for _, block := range ws.blocks {
		for _, d := range block.Days {
			if d == day {
				return block, true
			}
		}
	}
	return OpeningHours{}, false
}

// Blocks returns the underlying schedule blocks in declaration order.
func (ws *WeeklySchedule) Blocks() []OpeningHours {
	return ws.blocks
}
