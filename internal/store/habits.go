package store

import (
	"fmt"

	"habits/internal/habit"
)

// ListHabits returns copies of the user's habits in creation order.
func (s *Store) ListHabits(user string) []*habit.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.data.Habits[user]
	out := make([]*habit.Habit, 0, len(src))
	for _, h := range src {
		out = append(out, h.Clone())
	}
	return out
}

func (s *Store) GetHabit(user, id string) (*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(user, id)
	if i < 0 {
		return nil, fmt.Errorf("habit %s: %w", id, ErrNotFound)
	}
	return s.data.Habits[user][i].Clone(), nil
}

// CreateHabit adds a new habit named name for user.
func (s *Store) CreateHabit(user, name string) (*habit.Habit, error) {
	var created *habit.Habit
	err := s.mutate(func() (Event, error) {
		h, err := habit.New(name, s.now())
		if err != nil {
			return Event{}, err
		}
		s.data.Habits[user] = append(s.data.Habits[user], h)
		created = h.Clone()
		return Event{Kind: HabitCreated, User: user, Habit: h.Clone()}, nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateHabit replaces the stored habit with the same id.
func (s *Store) UpdateHabit(user string, h *habit.Habit) error {
	return s.mutate(func() (Event, error) {
		i := s.indexOf(user, h.ID)
		if i < 0 {
			return Event{}, fmt.Errorf("habit %s: %w", h.ID, ErrNotFound)
		}
		s.data.Habits[user][i] = h.Clone()
		return Event{Kind: HabitUpdated, User: user, Habit: h.Clone()}, nil
	})
}

func (s *Store) DeleteHabit(user, id string) error {
	return s.mutate(func() (Event, error) {
		i := s.indexOf(user, id)
		if i < 0 {
			return Event{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
		}
		list := s.data.Habits[user]
		removed := list[i]
		s.data.Habits[user] = append(list[:i:i], list[i+1:]...)
		return Event{Kind: HabitDeleted, User: user, Habit: removed}, nil
	})
}

// SetDay records status for one day of a habit.
func (s *Store) SetDay(user, id string, d habit.Date, status habit.Status) (*habit.Habit, error) {
	return s.updateDay(user, id, func(h *habit.Habit) { h.SetStatus(d, status) })
}

// ToggleDay cycles the status of one day and returns the updated habit.
func (s *Store) ToggleDay(user, id string, d habit.Date) (*habit.Habit, habit.Status, error) {
	var next habit.Status
	h, err := s.updateDay(user, id, func(h *habit.Habit) { next = h.Toggle(d) })
	return h, next, err
}

func (s *Store) updateDay(user, id string, change func(*habit.Habit)) (*habit.Habit, error) {
	var updated *habit.Habit
	err := s.mutate(func() (Event, error) {
		i := s.indexOf(user, id)
		if i < 0 {
			return Event{}, fmt.Errorf("habit %s: %w", id, ErrNotFound)
		}
		h := s.data.Habits[user][i]
		change(h)
		updated = h.Clone()
		return Event{Kind: HabitUpdated, User: user, Habit: h.Clone()}, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// indexOf finds a habit position. Callers hold s.mu.
func (s *Store) indexOf(user, id string) int {
	for i, h := range s.data.Habits[user] {
		if h.ID == id {
			return i
		}
	}
	return -1
}
