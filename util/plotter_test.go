package util

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
)

func TestPlotWeeklyHours(t *testing.T) {
	ws, err := schedule.NewWeeklySchedule([]schedule.OpeningHours{
		{
			Days:      []schedule.WeekDay{schedule.Monday, schedule.Tuesday},
			Intervals: []schedule.TimeInterval{{Open: 700, Close: 1700}},
		},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var buf bytes.Buffer
	if err := PlotWeeklyHours(&buf, "Jester Java", ws); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := buf.String()
	if len(html) == 0 {
		t.Fatal("Expected rendered chart output")
	}
	if !strings.Contains(html, "Jester Java") {
		t.Error("Expected the location name in the chart title")
	}
	for _, day := range []string{"Monday", "Sunday"} {
		if !strings.Contains(html, day) {
			t.Errorf("Expected %s on the x axis", day)
		}
	}
}

func TestPlotWeeklyHours_EmptySchedule(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotWeeklyHours(&buf, "Ghost Kitchen", schedule.EmptySchedule()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("Expected rendered chart output for an all-closed week")
	}
}
