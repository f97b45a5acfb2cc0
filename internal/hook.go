package habits

import (
	"github.com/charmbracelet/log"

	"habits/internal/store"
)

// BroadcastHook queues every committed habit change for the owner's websocket
// clients. Events reach broadcastLoop in commit order.
func (s *Server) BroadcastHook() store.Hook {
	return func(e store.Event) {
		if s.Hub.Count(e.User) == 0 {
			return
		}
		s.events <- e
	}
}

// broadcastLoop pushes queued changes one at a time, each followed by a fresh
// overview, so clients see them in the order they were committed.
func (s *Server) broadcastLoop() {
	for e := range s.events {
		log.Debug("Broadcasting habit change", "kind", e.Kind, "user", e.User)

		var payload any = e.Habit
		if e.Kind == store.HabitDeleted {
			payload = map[string]string{"id": e.Habit.ID}
		}
		s.Hub.Send(e.User, Message{Type: string(e.Kind), Payload: payload})
		s.sendOverview(e.User)
	}
}
