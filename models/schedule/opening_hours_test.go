package schedule

import "testing"

func TestNewWeeklySchedule_RejectsDuplicateDays(t *testing.T) {
	_, err := NewWeeklySchedule([]OpeningHours{
		{Days: []WeekDay{Monday, Tuesday}, Intervals: []TimeInterval{{Open: 700, Close: 1400}}},
		{Days: []WeekDay{Tuesday}, Intervals: []TimeInterval{{Open: 1700, Close: 2100}}},
	})
	if err == nil {
		t.Fatal("Expected an error for a weekday appearing in two blocks")
	}
}

func TestNewWeeklySchedule_RejectsInvalidWeekday(t *testing.T) {
	_, err := NewWeeklySchedule([]OpeningHours{
		{Days: []WeekDay{WeekDay(7)}, Intervals: []TimeInterval{{Open: 700, Close: 1400}}},
	})
	if err == nil {
		t.Fatal("Expected an error for an out-of-range weekday")
	}
}

func TestNewWeeklySchedule_RejectsInvalidInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval TimeInterval
	}{
		{"Open after close", TimeInterval{Open: 1400, Close: 700}},
		{"Zero-length", TimeInterval{Open: 900, Close: 900}},
		{"Bad minute encoding", TimeInterval{Open: 775, Close: 1400}},
		{"Past end of day", TimeInterval{Open: 700, Close: 2430}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewWeeklySchedule([]OpeningHours{
				{Days: []WeekDay{Monday}, Intervals: []TimeInterval{test.interval}},
			})
			if err == nil {
				t.Errorf("Expected interval %+v to be rejected", test.interval)
			}
		})
	}
}

func TestBlockFor(t *testing.T) {
	ws, err := NewWeeklySchedule([]OpeningHours{
		{Days: []WeekDay{Monday, Wednesday}, Intervals: []TimeInterval{{Open: 700, Close: 1400}}},
		{Days: []WeekDay{Saturday}, Intervals: []TimeInterval{}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	block, ok := ws.BlockFor(Wednesday)
	if !ok {
		t.Fatal("Expected a block for Wednesday")
	}
	if len(block.Intervals) != 1 || block.Intervals[0].Open != 700 {
		t.Errorf("Unexpected Wednesday block: %+v", block)
	}

	// Explicitly empty is found, with no intervals.
	block, ok = ws.BlockFor(Saturday)
	if !ok {
		t.Fatal("Expected a block for Saturday")
	}
	if len(block.Intervals) != 0 {
		t.Errorf("Expected empty Saturday block, got %+v", block)
	}

	if _, ok := ws.BlockFor(Sunday); ok {
		t.Error("Expected no block for Sunday")
	}
}

func TestTimeInterval_Contains(t *testing.T) {
	iv := TimeInterval{Open: 930, Close: 1400}

	if iv.OpenMinutes() != 570 || iv.CloseMinutes() != 840 {
		t.Fatalf("Unexpected minute conversion: %d-%d", iv.OpenMinutes(), iv.CloseMinutes())
	}

	tests := []struct {
		minutes int
		want    bool
	}{
		{569, false},
		{570, true},
		{700, true},
		{839, true},
		{840, false}, // close instant is closed
	}
	for _, test := range tests {
		if got := iv.Contains(test.minutes); got != test.want {
			t.Errorf("Contains(%d) = %v, want %v", test.minutes, got, test.want)
		}
	}
}

func TestWeekDay_Add(t *testing.T) {
	if got := Friday.Add(1); got != Saturday {
		t.Errorf("Friday.Add(1) = %v, want Saturday", got)
	}
	if got := Saturday.Add(2); got != Monday {
		t.Errorf("Saturday.Add(2) = %v, want Monday", got)
	}
	if got := Sunday.Add(7); got != Sunday {
		t.Errorf("Sunday.Add(7) = %v, want Sunday", got)
	}
}

func TestWeekDay_String(t *testing.T) {
	if Monday.String() != "Monday" || Sunday.String() != "Sunday" {
		t.Error("Unexpected weekday names")
	}
	if WeekDay(9).String() != "Unknown" {
		t.Error("Expected Unknown for an out-of-range weekday")
	}
}
