package stats

import (
	"time"

	"habits/internal/habit"
)

// Metrics is the per-habit card set of the detail screen.
type Metrics struct {
	CurrentStreak  int `json:"current_streak"`
	BestStreak     int `json:"best_streak"`
	SuccessRate    int `json:"success_rate"`
	MonthCompleted int `json:"month_completed"`
	DaysInMonth    int `json:"days_in_month"`
}

// HabitMetrics computes the detail metrics of h as of ref, with the month counters
// taken from year/month (the month shown on the calendar).
func HabitMetrics(h *habit.Habit, ref habit.Date, year int, month time.Month) Metrics {
	mc := MonthlyCount(h, year, month)
	return Metrics{
		CurrentStreak:  CurrentStreak(h, ref, StreakLookback),
		BestStreak:     BestStreak(h, ref, BestStreakWindow),
		SuccessRate:    SuccessRate(h, ref, MonthlyWindow),
		MonthCompleted: mc.Completed,
		DaysInMonth:    mc.Days,
	}
}

// Summary is the analysis screen over all habits.
type Summary struct {
	Date          habit.Date `json:"date"`
	Habits        int        `json:"habits"`
	TodayRate     int        `json:"today_rate"`
	CurrentStreak int        `json:"current_streak"`
	WeeklyRate    int        `json:"weekly_rate"`
	BestDay       BestDay    `json:"best_day"`
	Week          []DayBar   `json:"week"`
}

func Overview(habits []*habit.Habit, ref habit.Date) Summary {
	return Summary{
		Date:          ref,
		Habits:        len(habits),
		TodayRate:     DailyRate(habits, ref),
		CurrentStreak: AnyStreak(habits, ref, AnyStreakLookback),
		WeeklyRate:    AggregateRate(habits, ref, WeeklyWindow),
		BestDay:       BestWeekday(habits, ref, WeekdayWindow),
		Week:          WeeklyBars(habits, ref),
	}
}
