package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habits/internal/habit"
)

func day(s string) habit.Date {
	return habit.MustParseDate(s)
}

// marked builds a habit from "YYYY-MM-DD" -> done pairs.
func marked(name string, marks map[string]bool) *habit.Habit {
	h := &habit.Habit{ID: name, Name: name, Completions: habit.Completions{}}
	for k, v := range marks {
		h.Completions[day(k)] = v
	}
	return h
}

// doneRange marks every day from..to (inclusive) as done.
func doneRange(h *habit.Habit, from, to habit.Date) *habit.Habit {
	for d := from; !d.After(to); d = d.AddDays(1) {
		h.SetStatus(d, habit.Done)
	}
	return h
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(0, 0))
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 50, percent(1, 2))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 13, percent(1, 8)) // 12.5 rounds up
	assert.Equal(t, 43, percent(3, 7))
	assert.Equal(t, 100, percent(7, 7))
}

func TestStreaksFailedLastDay(t *testing.T) {
	h := marked("read", map[string]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": false,
	})
	ref := day("2024-01-03")
	assert.Equal(t, 0, CurrentStreak(h, ref, StreakLookback))
	assert.Equal(t, 2, BestStreak(h, ref, BestStreakWindow))
}

func TestCurrentStreak(t *testing.T) {
	h := doneRange(&habit.Habit{}, day("2024-01-01"), day("2024-01-03"))

	assert.Equal(t, 3, CurrentStreak(h, day("2024-01-03"), StreakLookback))
	assert.Equal(t, 2, CurrentStreak(h, day("2024-01-02"), StreakLookback))
	assert.Equal(t, 0, CurrentStreak(h, day("2024-01-04"), StreakLookback), "unmarked ref day")
}

func TestCurrentStreakIsBoundedByLookback(t *testing.T) {
	ref := day("2024-06-30")
	h := doneRange(&habit.Habit{}, ref.AddDays(-500), ref)

	assert.Equal(t, StreakLookback, CurrentStreak(h, ref, StreakLookback))
	assert.Equal(t, BestStreakWindow, BestStreak(h, ref, BestStreakWindow))
	assert.Equal(t, 10, CurrentStreak(h, ref, 10))
}

func TestBestStreakResetsOnGap(t *testing.T) {
	h := &habit.Habit{}
	doneRange(h, day("2024-03-01"), day("2024-03-05")) // 5
	h.SetStatus(day("2024-03-06"), habit.Failed)
	doneRange(h, day("2024-03-07"), day("2024-03-09")) // 3
	// 2024-03-10 unmarked
	doneRange(h, day("2024-03-11"), day("2024-03-12")) // 2

	ref := day("2024-03-12")
	assert.Equal(t, 5, BestStreak(h, ref, BestStreakWindow))
	assert.Equal(t, 2, CurrentStreak(h, ref, StreakLookback))

	// Days outside the window are not considered.
	assert.Equal(t, 3, BestStreak(h, ref, 7))
}

func TestBestStreakNeverBelowCurrent(t *testing.T) {
	ref := day("2024-01-31")
	habits := []*habit.Habit{
		{},
		doneRange(&habit.Habit{}, ref.AddDays(-3), ref),
		doneRange(&habit.Habit{}, ref.AddDays(-400), ref),
		marked("mixed", map[string]bool{"2024-01-29": true, "2024-01-30": false, "2024-01-31": true}),
	}
	for _, h := range habits {
		assert.GreaterOrEqual(t, BestStreak(h, ref, BestStreakWindow), CurrentStreak(h, ref, StreakLookback))
	}
}

func TestSuccessRate(t *testing.T) {
	ref := day("2024-01-10")
	h := marked("run", map[string]bool{
		"2024-01-10": true,
		"2024-01-09": false,
		"2024-01-08": true,
		"2024-01-05": true,
		"2024-01-03": true, // outside the 7 day window
	})

	assert.Equal(t, 43, SuccessRate(h, ref, WeeklyWindow))
	assert.Equal(t, 13, SuccessRate(h, ref, MonthlyWindow))
	assert.Equal(t, 0, SuccessRate(&habit.Habit{}, ref, WeeklyWindow))
}

func TestSuccessRateMonotonic(t *testing.T) {
	ref := day("2024-01-10")
	h := marked("run", map[string]bool{"2024-01-10": true, "2024-01-09": false})
	before := SuccessRate(h, ref, WeeklyWindow)

	h.SetStatus(day("2024-01-09"), habit.Done)
	afterFailed := SuccessRate(h, ref, WeeklyWindow)
	assert.GreaterOrEqual(t, afterFailed, before)

	h.SetStatus(day("2024-01-07"), habit.Done)
	assert.GreaterOrEqual(t, SuccessRate(h, ref, WeeklyWindow), afterFailed)
}

func TestDailyRate(t *testing.T) {
	d := day("2024-01-03")
	done := marked("a", map[string]bool{"2024-01-03": true})
	failed := marked("b", map[string]bool{"2024-01-03": false})
	unmarked := marked("c", nil)

	assert.Equal(t, 0, DailyRate(nil, d))
	assert.Equal(t, 50, DailyRate([]*habit.Habit{done, unmarked}, d))
	assert.Equal(t, 33, DailyRate([]*habit.Habit{done, failed, unmarked}, d))
	assert.Equal(t, 100, DailyRate([]*habit.Habit{done}, d))

	for _, set := range [][]*habit.Habit{nil, {failed}, {done, failed}, {done}} {
		r := DailyRate(set, d)
		assert.GreaterOrEqual(t, r, 0)
		assert.LessOrEqual(t, r, 100)
	}
}

func TestAggregateRate(t *testing.T) {
	ref := day("2024-01-07")
	a := doneRange(&habit.Habit{}, ref.AddDays(-6), ref) // 7 of 7
	b := marked("b", map[string]bool{"2024-01-07": true})  // 1 of 7

	assert.Equal(t, 57, AggregateRate([]*habit.Habit{a, b}, ref, WeeklyWindow)) // 8/14
	assert.Equal(t, 0, AggregateRate(nil, ref, WeeklyWindow))
}

func TestAnyStreak(t *testing.T) {
	a := marked("a", map[string]bool{"2024-01-03": true, "2024-01-01": true})
	b := marked("b", map[string]bool{"2024-01-02": true, "2024-01-03": false})
	habits := []*habit.Habit{a, b}

	assert.Equal(t, 3, AnyStreak(habits, day("2024-01-03"), AnyStreakLookback))
	assert.Equal(t, 0, AnyStreak(habits, day("2024-01-04"), AnyStreakLookback))
	assert.Equal(t, 0, AnyStreak(nil, day("2024-01-03"), AnyStreakLookback))

	always := doneRange(&habit.Habit{}, day("2023-01-01"), day("2024-01-03"))
	assert.Equal(t, AnyStreakLookback, AnyStreak([]*habit.Habit{always}, day("2024-01-03"), AnyStreakLookback))
}

func TestBestWeekdayDefaultsToSunday(t *testing.T) {
	best := BestWeekday(nil, day("2024-01-03"), WeekdayWindow)
	assert.Equal(t, time.Sunday, best.Weekday)
	assert.Equal(t, "Sunday", best.Name)
	assert.Equal(t, 0, best.Rate)

	// Habits exist but nothing was ever done.
	best = BestWeekday([]*habit.Habit{marked("a", nil)}, day("2024-01-03"), WeekdayWindow)
	assert.Equal(t, time.Sunday, best.Weekday)
}

func TestBestWeekdayHighestRatio(t *testing.T) {
	// Window ending Wed 2024-01-03 starts Tue 2023-12-05.
	// Mondays in window: Dec 11, 18, 25, Jan 1. Tuesdays: Dec 5, 12, 19, 26, Jan 2.
	h := marked("a", map[string]bool{
		"2023-12-11": true, "2023-12-18": true, "2023-12-25": true,
		"2023-12-05": true, "2023-12-12": true, "2023-12-19": true, "2023-12-26": true, "2024-01-02": true,
	})
	best := BestWeekday([]*habit.Habit{h}, day("2024-01-03"), WeekdayWindow)
	assert.Equal(t, time.Tuesday, best.Weekday)
	assert.Equal(t, 100, best.Rate)
}

func TestBestWeekdayTieGoesToEarlierDay(t *testing.T) {
	h := marked("a", map[string]bool{
		"2023-12-11": true, "2023-12-18": true, "2023-12-25": true, "2024-01-01": true,
		"2023-12-05": true, "2023-12-12": true, "2023-12-19": true, "2023-12-26": true, "2024-01-02": true,
	})
	best := BestWeekday([]*habit.Habit{h}, day("2024-01-03"), WeekdayWindow)
	assert.Equal(t, time.Monday, best.Weekday)
}

func TestWeekdayStatsTotals(t *testing.T) {
	habits := []*habit.Habit{marked("a", nil), marked("b", nil)}
	buckets := WeekdayStats(habits, day("2024-01-03"), WeekdayWindow)

	sum := 0
	for i, b := range buckets {
		assert.Equal(t, time.Weekday(i), b.Weekday)
		sum += b.Total
	}
	assert.Equal(t, 2*WeekdayWindow, sum)
	// 30 days from a Wednesday back: Tue and Wed appear 5 times, the rest 4.
	assert.Equal(t, 10, buckets[time.Wednesday].Total)
	assert.Equal(t, 10, buckets[time.Tuesday].Total)
	assert.Equal(t, 8, buckets[time.Sunday].Total)
}

func TestWeeklyBars(t *testing.T) {
	ref := day("2024-01-03")
	a := marked("a", map[string]bool{"2024-01-03": true, "2023-12-28": true})
	b := marked("b", map[string]bool{"2024-01-03": true})

	bars := WeeklyBars([]*habit.Habit{a, b}, ref)
	require.Len(t, bars, 7)

	assert.Equal(t, "2023-12-28", bars[0].Date.String())
	assert.Equal(t, "Thu", bars[0].Label)
	assert.Equal(t, 50, bars[0].Performance)
	assert.Equal(t, 1, bars[0].Completed)

	last := bars[6]
	assert.Equal(t, ref, last.Date)
	assert.Equal(t, "Wed", last.Label)
	assert.Equal(t, 100, last.Performance)
	assert.Equal(t, 2, last.Completed)
	assert.Equal(t, 2, last.Total)

	for _, bar := range WeeklyBars(nil, ref) {
		assert.Equal(t, 0, bar.Performance)
		assert.Equal(t, 0, bar.Total)
	}
}

func TestTrend(t *testing.T) {
	ref := day("2024-01-31")
	h := marked("a", map[string]bool{
		"2024-01-31": true,
		"2024-01-29": false,
		"2024-01-30": true, // not sampled
		"2024-01-05": true, // ref - 26, the oldest sample
	})

	points := Trend(h, ref, TrendPoints, TrendStep)
	require.Len(t, points, TrendPoints)

	assert.Equal(t, "2024-01-05", points[0].Date.String())
	require.NotNil(t, points[0].Value)
	assert.Equal(t, 100, *points[0].Value)

	assert.Equal(t, "2024-01-29", points[12].Date.String())
	require.NotNil(t, points[12].Value)
	assert.Equal(t, 0, *points[12].Value)

	assert.Equal(t, ref, points[13].Date)
	require.NotNil(t, points[13].Value)
	assert.Equal(t, 100, *points[13].Value)

	assert.Nil(t, points[1].Value, "unmarked sample")
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i-1].Date.Before(points[i].Date))
	}
}

func TestTrendUnmarkedSerialisesAsNull(t *testing.T) {
	h := marked("a", map[string]bool{"2024-01-31": false})
	points := Trend(h, day("2024-01-31"), 2, TrendStep)

	b, err := json.Marshal(points)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"date":"2024-01-29","value":null},{"date":"2024-01-31","value":0}]`, string(b))
}

func TestMonthlyCount(t *testing.T) {
	h := marked("a", map[string]bool{
		"2024-02-01": true,
		"2024-02-29": true,
		"2024-02-10": false,
		"2024-03-01": true,
		"2024-01-31": true,
	})

	leap := MonthlyCount(h, 2024, time.February)
	assert.Equal(t, 2, leap.Completed)
	assert.Equal(t, 29, leap.Days)

	assert.Equal(t, 28, MonthlyCount(h, 2023, time.February).Days)
	assert.Equal(t, 31, MonthlyCount(h, 2024, time.March).Days)
	assert.Equal(t, 1, MonthlyCount(h, 2024, time.March).Completed)
}

func TestWeekProgress(t *testing.T) {
	h := marked("a", map[string]bool{
		"2023-12-31": true,
		"2024-01-02": true,
		"2024-01-03": false,
		"2024-01-07": true, // next week
	})
	w := WeekProgress(h, day("2024-01-03"))

	require.Len(t, w.Days, 7)
	assert.Equal(t, "2023-12-31", w.Days[0].Date.String())
	assert.Equal(t, time.Sunday, w.Days[0].Date.Weekday())
	assert.Equal(t, "2024-01-06", w.Days[6].Date.String())
	assert.Equal(t, habit.Failed, w.Days[3].Status)
	assert.Equal(t, 2, w.Completed)
	assert.Equal(t, 7, w.Total)
	assert.Equal(t, 29, w.Percentage)
}

func TestCalendar(t *testing.T) {
	h := marked("a", map[string]bool{"2024-02-29": true, "2024-02-02": false})
	m := Calendar(h, 2024, time.February)

	assert.Equal(t, 4, m.Offset) // Feb 1 2024 is a Thursday
	require.Len(t, m.Days, 29)
	assert.Equal(t, habit.Failed, m.Days[1].Status)
	assert.Equal(t, habit.Done, m.Days[28].Status)
	assert.Equal(t, habit.Unmarked, m.Days[0].Status)

	assert.Len(t, Calendar(h, 2023, time.February).Days, 28)
	assert.Equal(t, 0, Calendar(h, 2023, time.October).Offset) // Oct 1 2023 is a Sunday
}

func TestHabitMetrics(t *testing.T) {
	h := marked("read", map[string]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": false,
	})
	m := HabitMetrics(h, day("2024-01-03"), 2024, time.January)

	assert.Equal(t, Metrics{
		CurrentStreak:  0,
		BestStreak:     2,
		SuccessRate:    7,
		MonthCompleted: 2,
		DaysInMonth:    31,
	}, m)
}

func TestOverviewEmpty(t *testing.T) {
	s := Overview(nil, day("2024-01-03"))

	assert.Equal(t, 0, s.Habits)
	assert.Equal(t, 0, s.TodayRate)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 0, s.WeeklyRate)
	assert.Equal(t, time.Sunday, s.BestDay.Weekday)
	assert.Len(t, s.Week, 7)
}

func TestOverview(t *testing.T) {
	ref := day("2024-01-03")
	a := doneRange(&habit.Habit{}, ref.AddDays(-2), ref)
	b := marked("b", nil)

	s := Overview([]*habit.Habit{a, b}, ref)
	assert.Equal(t, 2, s.Habits)
	assert.Equal(t, 50, s.TodayRate)
	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 21, s.WeeklyRate) // 3 of 14
	assert.Equal(t, ref, s.Week[6].Date)
}

func TestEngineDoesNotMutateInput(t *testing.T) {
	h := marked("a", map[string]bool{"2024-01-01": true})
	before := h.Clone()

	ref := day("2024-01-03")
	_ = Overview([]*habit.Habit{h}, ref)
	_ = HabitMetrics(h, ref, 2024, time.January)
	_ = Trend(h, ref, TrendPoints, TrendStep)
	_ = Calendar(h, 2024, time.January)

	assert.Equal(t, before.Completions, h.Completions)
}

func TestNegativeWindowsYieldZeroValues(t *testing.T) {
	ref := day("2024-01-03")
	h := marked("read", map[string]bool{"2024-01-02": true, "2024-01-03": true})
	list := []*habit.Habit{h}

	assert.NotPanics(t, func() {
		assert.Empty(t, Trend(h, ref, -1, TrendStep))
		assert.Equal(t, 0, CurrentStreak(h, ref, -5))
		assert.Equal(t, 0, BestStreak(h, ref, -5))
		assert.Equal(t, 0, AnyStreak(list, ref, -5))
		assert.Equal(t, 0, SuccessRate(h, ref, -5))
		assert.Equal(t, 0, AggregateRate(list, ref, -5))

		best := BestWeekday(list, ref, -5)
		assert.Equal(t, time.Sunday, best.Weekday)
		assert.Equal(t, 0, best.Rate)
		for _, b := range WeekdayStats(list, ref, -5) {
			assert.Zero(t, b.Total)
		}
	})
	assert.Len(t, Trend(h, ref, 0, TrendStep), 0)
}
