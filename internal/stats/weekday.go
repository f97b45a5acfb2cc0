package stats

import (
	"time"

	"habits/internal/habit"
)

// WeekdayStat accumulates (habit, day) pairs falling on one weekday.
type WeekdayStat struct {
	Weekday   time.Weekday `json:"weekday"`
	Completed int          `json:"completed"`
	Total     int          `json:"total"`
}

// BestDay is the weekday with the highest completion ratio.
type BestDay struct {
	Weekday time.Weekday `json:"weekday"`
	Name    string       `json:"name"`
	Rate    int          `json:"rate"`
}

// WeekdayStats buckets the window days ending at ref by weekday, Sunday first.
func WeekdayStats(habits []*habit.Habit, ref habit.Date, window int) [7]WeekdayStat {
	var buckets [7]WeekdayStat
	for i := range buckets {
		buckets[i].Weekday = time.Weekday(i)
	}
	for i := 0; i < window; i++ {
		d := ref.AddDays(-i)
		done, total := DayCounts(habits, d)
		b := &buckets[d.Weekday()]
		b.Completed += done
		b.Total += total
	}
	return buckets
}

// BestWeekday picks the weekday with the highest completed/total ratio in the window.
// Weekdays are visited Sunday to Saturday and only a strictly higher ratio replaces
// the current pick, so ties go to the earlier weekday. When nothing was completed the
// result is Sunday with rate 0.
func BestWeekday(habits []*habit.Habit, ref habit.Date, window int) BestDay {
	best := BestDay{Weekday: time.Sunday}
	bestCompleted, bestTotal := 0, 1
	for _, b := range WeekdayStats(habits, ref, window) {
		if b.Total == 0 {
			continue
		}
		if b.Completed*bestTotal > bestCompleted*b.Total {
			bestCompleted, bestTotal = b.Completed, b.Total
			best.Weekday = b.Weekday
		}
	}
	best.Name = best.Weekday.String()
	best.Rate = percent(bestCompleted, bestTotal)
	return best
}
