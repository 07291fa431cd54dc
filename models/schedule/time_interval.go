package schedule

// TimeInterval is one service window within a single day. Open and Close are
// HHMM-encoded clock times (930 = 9:30, 1400 = 14:00). An interval never
// spans midnight: overnight hours are split into an interval ending at 2400
// and one starting at 0 on the following day.
type TimeInterval struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// minutesOf converts an HHMM-encoded time to minutes since midnight.
func minutesOf(hhmm int) int {
	return (hhmm/100)*60 + hhmm%100
}

func (t TimeInterval) OpenMinutes() int {
	return minutesOf(t.Open)
}

func (t TimeInterval) CloseMinutes() int {
	return minutesOf(t.Close)
}

// Contains reports whether minutes since midnight falls in [open, close).
// The close instant itself is closed.
func (t TimeInterval) Contains(minutes int) bool {
	return t.OpenMinutes() <= minutes && minutes < t.CloseMinutes()
}

// Valid checks the HHMM encoding and the open-before-close invariant.
func (t TimeInterval) Valid() bool {
	if t.Open < 0 || t.Close > 2400 {
		return false
	}
	if t.Open%100 >= 60 || t.Close%100 >= 60 {
		return false
	}
	return t.OpenMinutes() < t.CloseMinutes()
}
