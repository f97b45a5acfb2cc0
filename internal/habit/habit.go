package habit

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("habit name is required")

// Status is the tri-state mark of a habit on one day.
type Status int

const (
	Unmarked Status = iota
	Done
	Failed
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unmarked"
	}
}

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done":
		return Done, nil
	case "failed":
		return Failed, nil
	case "unmarked", "":
		return Unmarked, nil
	}
	return Unmarked, fmt.Errorf("invalid status %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Completions is the sparse per-day record of a habit. A missing key means the day
// was never marked; false means it was explicitly marked as not done.
type Completions map[Date]bool

// UnmarshalJSON keeps every well-formed date/bool pair and drops the rest, so damaged
// entries read back as unmarked days instead of failing the whole habit.
func (c *Completions) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Completions, len(raw))
	for key, value := range raw {
		d, err := ParseDate(key)
		if err != nil {
			continue
		}
		var done *bool
		if err := json.Unmarshal(value, &done); err != nil || done == nil {
			continue
		}
		out[d] = *done
	}
	*c = out
	return nil
}

// Habit is a named behaviour tracked per calendar day.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	CreatedAt   time.Time   `json:"created_at"`
	Completions Completions `json:"completions"`
}

// New creates a habit with a fresh id and no marked days.
func New(name string, now time.Time) (*Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Habit{
		ID:          uuid.NewString(),
		Name:        name,
		CreatedAt:   now,
		Completions: Completions{},
	}, nil
}

// Status reports the mark for d.
func (h *Habit) Status(d Date) Status {
	done, ok := h.Completions[d]
	switch {
	case !ok:
		return Unmarked
	case done:
		return Done
	default:
		return Failed
	}
}

// SetStatus records s for d. Unmarked removes the day from the record.
func (h *Habit) SetStatus(d Date, s Status) {
	if h.Completions == nil {
		h.Completions = Completions{}
	}
	switch s {
	case Done:
		h.Completions[d] = true
	case Failed:
		h.Completions[d] = false
	default:
		delete(h.Completions, d)
	}
}

// Toggle advances d through unmarked -> done -> failed -> unmarked and returns the new
// status.
func (h *Habit) Toggle(d Date) Status {
	next := Unmarked
	switch h.Status(d) {
	case Unmarked:
		next = Done
	case Done:
		next = Failed
	}
	h.SetStatus(d, next)
	return next
}

// Dates returns the marked days in ascending order.
func (h *Habit) Dates() []Date {
	dates := make([]Date, 0, len(h.Completions))
	for d := range h.Completions {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Clone returns a deep copy.
func (h *Habit) Clone() *Habit {
	c := *h
	c.Completions = make(Completions, len(h.Completions))
	for d, v := range h.Completions {
		c.Completions[d] = v
	}
	return &c
}
