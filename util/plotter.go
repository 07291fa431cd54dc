package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Longhorn-Developers/UT-Dining-sub000/models/schedule"
)

// PlotWeeklyHours renders a location's total open hours per weekday as an
// HTML bar chart. Debug/ops aid, not part of the app UI.
func PlotWeeklyHours(w io.Writer, locationName string, ws *schedule.WeeklySchedule) error {
	days := []schedule.WeekDay{
		schedule.Monday, schedule.Tuesday, schedule.Wednesday,
		schedule.Thursday, schedule.Friday, schedule.Saturday, schedule.Sunday,
	}

	labels := make([]string, len(days))
	values := make([]opts.BarData, len(days))
	for i, day := range days {
		labels[i] = day.String()
		minutes := 0
		if block, ok := ws.BlockFor(day); ok {
			for _, iv := range block.Intervals {
				minutes += iv.CloseMinutes() - iv.OpenMinutes()
			}
		}
		values[i] = opts.BarData{Value: float64(minutes) / 60.0}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Hours",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: locationName + " - open hours per day",
		}),
	)
	bar.SetXAxis(labels).AddSeries("Open hours", values)

	return bar.Render(w)
}
