package stats

import (
	"time"

	"habits/internal/habit"
)

// DayMark is a date paired with a habit's status on it.
type DayMark struct {
	Date   habit.Date   `json:"date"`
	Status habit.Status `json:"status"`
}

// Week is a habit's progress over the Sunday-started week containing a day.
type Week struct {
	Days       []DayMark `json:"days"`
	Completed  int       `json:"completed"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
}

func WeekProgress(h *habit.Habit, ref habit.Date) Week {
	start := ref.StartOfWeek()
	w := Week{Days: make([]DayMark, 0, 7), Total: 7}
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		s := h.Status(d)
		if s == habit.Done {
			w.Completed++
		}
		w.Days = append(w.Days, DayMark{Date: d, Status: s})
	}
	w.Percentage = percent(w.Completed, w.Total)
	return w
}

// Month is a calendar page for one habit. Offset is the number of blank cells before
// the 1st in a Sunday-first grid.
type Month struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Offset int        `json:"offset"`
	Days   []DayMark  `json:"days"`
}

func Calendar(h *habit.Habit, year int, month time.Month) Month {
	first := habit.Date{Year: year, Month: month, Day: 1}
	n := habit.DaysIn(year, month)
	m := Month{
		Year:   year,
		Month:  month,
		Offset: int(first.Weekday()),
		Days:   make([]DayMark, 0, n),
	}
	for day := 1; day <= n; day++ {
		d := habit.Date{Year: year, Month: month, Day: day}
		m.Days = append(m.Days, DayMark{Date: d, Status: h.Status(d)})
	}
	return m
}
