package stats

import "habits/internal/habit"

// DayBar is one bar of the weekly performance chart.
type DayBar struct {
	Date        habit.Date `json:"date"`
	Label       string     `json:"label"`
	Performance int        `json:"performance"`
	Completed   int        `json:"completed"`
	Total       int        `json:"total"`
}

// WeeklyBars returns the seven days ending at ref, oldest first.
func WeeklyBars(habits []*habit.Habit, ref habit.Date) []DayBar {
	bars := make([]DayBar, 0, WeeklyWindow)
	for i := WeeklyWindow - 1; i >= 0; i-- {
		d := ref.AddDays(-i)
		done, total := DayCounts(habits, d)
		bars = append(bars, DayBar{
			Date:        d,
			Label:       d.Weekday().String()[:3],
			Performance: percent(done, total),
			Completed:   done,
			Total:       total,
		})
	}
	return bars
}

// TrendPoint is one sample of a single habit's trend line. Value is nil for an
// unmarked day and must be drawn as a gap.
type TrendPoint struct {
	Date  habit.Date `json:"date"`
	Value *int       `json:"value"`
}

// Trend samples h every step days going back from ref and returns points in
// chronological order: 100 for done, 0 for failed, nil for unmarked. A negative
// points count yields an empty series.
func Trend(h *habit.Habit, ref habit.Date, points, step int) []TrendPoint {
	points = max(points, 0)
	out := make([]TrendPoint, 0, points)
	for i := points - 1; i >= 0; i-- {
		d := ref.AddDays(-i * step)
		p := TrendPoint{Date: d}
		switch h.Status(d) {
		case habit.Done:
			v := 100
			p.Value = &v
		case habit.Failed:
			v := 0
			p.Value = &v
		}
		out = append(out, p)
	}
	return out
}
