// Package stats derives streaks, success rates and chart series from habit records.
//
// Every function is a pure computation over its arguments: the reference day and the
// window lengths are always passed in, nothing reads the clock and nothing mutates
// the habits it is given.
package stats

import "habits/internal/habit"

// Window lengths, in days.
const (
	StreakLookback    = 365
	BestStreakWindow  = 365
	WeeklyWindow      = 7
	MonthlyWindow     = 30
	AnyStreakLookback = 30
	WeekdayWindow     = 30
	TrendPoints       = 14
	TrendStep         = 2
)

// percent returns n/d as a whole percentage rounded half up, or 0 when d is 0.
func percent(n, d int) int {
	if d <= 0 {
		return 0
	}
	return (200*n + d) / (2 * d)
}

// DayCounts returns how many habits are done on d and how many habits there are.
func DayCounts(habits []*habit.Habit, d habit.Date) (done, total int) {
	for _, h := range habits {
		if h.Status(d) == habit.Done {
			done++
		}
	}
	return done, len(habits)
}

// DailyRate is the percentage of habits done on d. No habits gives 0.
func DailyRate(habits []*habit.Habit, d habit.Date) int {
	return percent(DayCounts(habits, d))
}
