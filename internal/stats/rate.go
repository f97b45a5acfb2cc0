package stats

import (
	"time"

	"habits/internal/habit"
)

// SuccessRate is the share of the window days ending at ref on which h was done.
// The denominator is always the window length, so unmarked days count against it.
func SuccessRate(h *habit.Habit, ref habit.Date, window int) int {
	done := 0
	for i := 0; i < window; i++ {
		if h.Status(ref.AddDays(-i)) == habit.Done {
			done++
		}
	}
	return percent(done, window)
}

// AggregateRate is SuccessRate across every habit: done (habit, day) pairs over
// habits x window.
func AggregateRate(habits []*habit.Habit, ref habit.Date, window int) int {
	completed, possible := 0, 0
	for i := 0; i < window; i++ {
		done, total := DayCounts(habits, ref.AddDays(-i))
		completed += done
		possible += total
	}
	return percent(completed, possible)
}

// MonthCount is the number of done days of a habit in one calendar month.
type MonthCount struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	Completed int        `json:"completed"`
	Days      int        `json:"days"`
}

// MonthlyCount counts the done days of h in year/month. Days is the real length of
// the month.
func MonthlyCount(h *habit.Habit, year int, month time.Month) MonthCount {
	days := habit.DaysIn(year, month)
	completed := 0
	for day := 1; day <= days; day++ {
		if h.Status(habit.Date{Year: year, Month: month, Day: day}) == habit.Done {
			completed++
		}
	}
	return MonthCount{Year: year, Month: month, Completed: completed, Days: days}
}
