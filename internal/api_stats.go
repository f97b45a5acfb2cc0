package habits

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"habits/internal/habit"
	"habits/internal/stats"
)

// HabitWeek is one row of the home screen.
type HabitWeek struct {
	Habit *habit.Habit `json:"habit"`
	Week  stats.Week   `json:"week"`
}

// month reads ?month=YYYY-MM, defaulting to the month of ref.
func month(w http.ResponseWriter, r *http.Request, ref habit.Date) (int, time.Month, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return ref.Year, ref.Month, true
	}
	year, m, err := habit.ParseMonth(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return 0, 0, false
	}
	return year, m, true
}

func (s *Server) habitParam(w http.ResponseWriter, r *http.Request) (*habit.Habit, bool) {
	h, err := s.Store.GetHabit(userFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return nil, false
	}
	return h, true
}

// @Summary Habit metrics
// @Description Current and best streak, 30 day success rate and the month counters
// @Tags stats
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Param date query string false "Reference day (YYYY-MM-DD), defaults to today"
// @Param month query string false "Month for the counters (YYYY-MM), defaults to the reference month"
// @Success 200 {object} stats.Metrics
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/habits/{id}/metrics [get]
func (s *Server) HabitMetricsHandler(w http.ResponseWriter, r *http.Request) {
	ref, ok := s.referenceDate(w, r)
	if !ok {
		return
	}
	year, m, ok := month(w, r, ref)
	if !ok {
		return
	}
	h, ok := s.habitParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.HabitMetrics(h, ref, year, m))
}

// @Summary Habit trend
// @Description Fourteen samples two days apart; unmarked days are null
// @Tags stats
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Param date query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {array} stats.TrendPoint
// @Router /api/habits/{id}/trend [get]
func (s *Server) TrendHandler(w http.ResponseWriter, r *http.Request) {
	ref, ok := s.referenceDate(w, r)
	if !ok {
		return
	}
	h, ok := s.habitParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.Trend(h, ref, stats.TrendPoints, stats.TrendStep))
}

// @Summary Habit calendar
// @Tags stats
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} stats.Month
// @Router /api/habits/{id}/calendar [get]
func (s *Server) CalendarHandler(w http.ResponseWriter, r *http.Request) {
	year, m, ok := month(w, r, s.today())
	if !ok {
		return
	}
	h, ok := s.habitParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.Calendar(h, year, m))
}

// @Summary Week progress
// @Description Sunday-started week containing the reference day, for every habit
// @Tags stats
// @Produce json
// @Security Bearer
// @Param date query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {array} HabitWeek
// @Router /api/week [get]
func (s *Server) WeekHandler(w http.ResponseWriter, r *http.Request) {
	ref, ok := s.referenceDate(w, r)
	if !ok {
		return
	}
	list := s.Store.ListHabits(userFrom(r.Context()))
	rows := make([]HabitWeek, 0, len(list))
	for _, h := range list {
		rows = append(rows, HabitWeek{Habit: h, Week: stats.WeekProgress(h, ref)})
	}
	writeJSON(w, http.StatusOK, rows)
}

// @Summary Overview
// @Description Today's rate, any-habit streak, weekly rate, best weekday and the weekly chart
// @Tags stats
// @Produce json
// @Security Bearer
// @Param date query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} stats.Summary
// @Router /api/overview [get]
func (s *Server) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	ref, ok := s.referenceDate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stats.Overview(s.Store.ListHabits(userFrom(r.Context())), ref))
}
