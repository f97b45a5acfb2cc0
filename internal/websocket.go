package habits

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"habits/internal/stats"
)

// Hub tracks websocket clients by the user they authenticated as.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

func (h *Hub) Add(conn *websocket.Conn, user string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = user
	connectedClients.Inc()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		connectedClients.Dec()
	}
}

// Count returns the number of connected clients for user.
func (h *Hub) Count(user string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, u := range h.clients {
		if u == user {
			n++
		}
	}
	return n
}

// Send writes message to every connection of user. Connections that fail are
// closed and dropped.
func (h *Hub) Send(user string, message any) {
	jsonMessage, err := json.Marshal(message)
	if err != nil {
		log.Error("Error marshaling message", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client, owner := range h.clients {
		if owner != user {
			continue
		}
		if err := client.WriteMessage(websocket.TextMessage, jsonMessage); err != nil {
			log.Error("Error sending message to client", "err", err, "user", user)
			client.Close()
			delete(h.clients, client)
			connectedClients.Dec()
		}
	}
}

// Message is the envelope pushed to websocket clients.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// sendOverview pushes the user's overview as of today.
func (s *Server) sendOverview(user string) {
	overview := stats.Overview(s.Store.ListHabits(user), s.today())
	s.Hub.Send(user, Message{Type: "overview", Payload: overview})
}

// @Summary WebSocket connection endpoint
// @Description Streams habit changes and overview updates for the token's user
// @Tags websocket
// @Param token query string true "Session token"
// @Success 101 {string} string "Switching Protocols to WebSocket"
// @Failure 401 {object} ErrorResponse
// @Router /connect [get]
func (s *Server) WebsocketHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.Issuer.Parse(r.URL.Query().Get("token"))
	if err != nil || !s.Store.UserExists(user) {
		writeError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Websocket upgrade failed", "error", err)
		return
	}
	log.Info("Client connected", "user", user, "addr", conn.RemoteAddr())

	s.Hub.Add(conn, user)
	defer func() {
		conn.Close()
		s.Hub.Remove(conn)
		log.Info("Client disconnected", "user", user)
	}()

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("Websocket read failed", "error", err)
			}
			return
		}
		switch string(p) {
		case "get_overview":
			s.sendOverview(user)
		default:
			log.Debug("Ignoring websocket message", "message", string(p))
		}
	}
}
