package stats

import "habits/internal/habit"

// CurrentStreak counts consecutive done days walking back from ref, ref included.
// Failed and unmarked days both end the walk. The result never exceeds lookback.
func CurrentStreak(h *habit.Habit, ref habit.Date, lookback int) int {
	streak := 0
	for i := 0; i < lookback; i++ {
		if h.Status(ref.AddDays(-i)) != habit.Done {
			break
		}
		streak++
	}
	return streak
}

// BestStreak is the longest run of done days within the window days ending at ref.
func BestStreak(h *habit.Habit, ref habit.Date, window int) int {
	best, run := 0, 0
	for i := window - 1; i >= 0; i-- {
		if h.Status(ref.AddDays(-i)) != habit.Done {
			run = 0
			continue
		}
		run++
		if run > best {
			best = run
		}
	}
	return best
}

// AnyStreak counts consecutive days, walking back from ref, on which at least one
// habit was done.
func AnyStreak(habits []*habit.Habit, ref habit.Date, lookback int) int {
	streak := 0
	for i := 0; i < lookback; i++ {
		if done, _ := DayCounts(habits, ref.AddDays(-i)); done == 0 {
			break
		}
		streak++
	}
	return streak
}
