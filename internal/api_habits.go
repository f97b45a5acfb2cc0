package habits

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"habits/internal/habit"
)

type createHabitRequest struct {
	Name string `json:"name"`
}

type toggleRequest struct {
	Date string `json:"date"`
}

type setDayRequest struct {
	Status string `json:"status"`
}

// DayResponse reports a habit after one of its days changed.
type DayResponse struct {
	Habit  *habit.Habit `json:"habit"`
	Date   habit.Date   `json:"date"`
	Status habit.Status `json:"status"`
}

// @Summary List habits
// @Tags habits
// @Produce json
// @Security Bearer
// @Success 200 {array} habit.Habit
// @Router /api/habits [get]
func (s *Server) ListHabitsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Store.ListHabits(userFrom(r.Context())))
}

// @Summary Create a habit
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body createHabitRequest true "Habit name"
// @Success 201 {object} habit.Habit
// @Failure 400 {object} ErrorResponse
// @Router /api/habits [post]
func (s *Server) CreateHabitHandler(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	user := userFrom(r.Context())

	h, err := s.Store.CreateHabit(user, req.Name)
	if err != nil {
		if errors.Is(err, habit.ErrEmptyName) {
			writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		writeStoreError(w, r, err)
		return
	}
	log.Info("Habit created", "user", user, "id", h.ID, "name", h.Name)

	writeJSON(w, http.StatusCreated, h)
}

// @Summary Get a habit
// @Tags habits
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Success 200 {object} habit.Habit
// @Failure 404 {object} ErrorResponse
// @Router /api/habits/{id} [get]
func (s *Server) GetHabitHandler(w http.ResponseWriter, r *http.Request) {
	h, err := s.Store.GetHabit(userFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h)
}

// @Summary Delete a habit
// @Tags habits
// @Security Bearer
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/habits/{id} [delete]
func (s *Server) DeleteHabitHandler(w http.ResponseWriter, r *http.Request) {
	user, id := userFrom(r.Context()), chi.URLParam(r, "id")
	if err := s.Store.DeleteHabit(user, id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	log.Info("Habit deleted", "user", user, "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Toggle a day
// @Description Cycles the day through unmarked, done and failed
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Param body body toggleRequest true "Day to toggle; empty means today"
// @Success 200 {object} DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/habits/{id}/toggle [post]
func (s *Server) ToggleDayHandler(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	d := s.today()
	if req.Date != "" {
		parsed, err := habit.ParseDate(req.Date)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		d = parsed
	}

	user := userFrom(r.Context())
	h, status, err := s.Store.ToggleDay(user, chi.URLParam(r, "id"), d)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	habitToggles.WithLabelValues(status.String()).Inc()
	log.Info("Habit toggled", "user", user, "id", h.ID, "date", d, "status", status)

	writeJSON(w, http.StatusOK, DayResponse{Habit: h, Date: d, Status: status})
}

// @Summary Set a day's status
// @Tags habits
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Habit ID"
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param body body setDayRequest true "done, failed or unmarked"
// @Success 200 {object} DayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/habits/{id}/days/{date} [put]
func (s *Server) SetDayHandler(w http.ResponseWriter, r *http.Request) {
	d, err := habit.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	var req setDayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status, err := habit.ParseStatus(req.Status)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	h, err := s.Store.SetDay(userFrom(r.Context()), chi.URLParam(r, "id"), d, status)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DayResponse{Habit: h, Date: d, Status: status})
}
