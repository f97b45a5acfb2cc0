package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"habits/internal/habit"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid name or password")
)

// User is an account. Passwords are compared as stored.
type User struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type EventKind string

const (
	HabitCreated EventKind = "habit_created"
	HabitUpdated EventKind = "habit_updated"
	HabitDeleted EventKind = "habit_deleted"
)

// Event describes a committed change to a user's habits.
type Event struct {
	Kind  EventKind
	User  string
	Habit *habit.Habit
}

// Hook is called after every successful mutation, one at a time and in commit order.
// Hooks must not mutate the store.
type Hook func(Event)

type data struct {
	Users  []User                    `json:"users"`
	Habits map[string][]*habit.Habit `json:"habits"`
}

// Store keeps users and their habits in a single JSON file. All access goes through
// one mutex; habits handed out are copies.
type Store struct {
	path   string
	mu     sync.Mutex
	notify sync.Mutex
	data   data
	hooks  []Hook
	now    func() time.Time
}

// Open loads path, starting empty when the file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: data{Habits: map[string][]*habit.Habit{}},
		now:  time.Now,
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Info("Starting with an empty store", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", path, err)
	}
	if s.data.Habits == nil {
		s.data.Habits = map[string][]*habit.Habit{}
	}
	log.Info("Store loaded", "path", path, "users", len(s.data.Users))
	return s, nil
}

func (d data) clone() data {
	out := data{
		Users:  append([]User(nil), d.Users...),
		Habits: make(map[string][]*habit.Habit, len(d.Habits)),
	}
	for user, list := range d.Habits {
		copied := make([]*habit.Habit, len(list))
		for i, h := range list {
			copied[i] = h.Clone()
		}
		out.Habits[user] = copied
	}
	return out
}

func (s *Store) AddHook(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}

// save writes the whole store. Callers hold s.mu.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".habits-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}

// mutate runs fn under the lock, persists the result and then notifies hooks outside
// the lock. When fn or the write fails the in-memory data is rolled back.
// An event with an empty Kind is not announced.
func (s *Store) mutate(fn func() (Event, error)) error {
	s.mu.Lock()
	before := s.data.clone()
	event, err := fn()
	if err == nil {
		err = s.save()
	}
	if err != nil {
		s.data = before
	}
	hooks := append([]Hook(nil), s.hooks...)
	if err != nil || event.Kind == "" {
		s.mu.Unlock()
		return err
	}

	// Taking notify before releasing mu keeps hook calls in commit order.
	s.notify.Lock()
	s.mu.Unlock()
	defer s.notify.Unlock()
	for _, h := range hooks {
		h(event)
	}
	return nil
}
