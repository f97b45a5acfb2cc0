package habits

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"habits/internal/auth"
	"habits/internal/habit"
	"habits/internal/store"
)

// Completer produces a chat completion. *ai.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Server encapsulates all the state and handlers for the habits application
type Server struct {
	Store    *store.Store
	Issuer   *auth.Issuer
	AI       Completer
	Hub      *Hub
	Location *time.Location
	now      func() time.Time
	upgrader websocket.Upgrader
	events   chan store.Event
}

// NewServer wires a server around an opened store. ai may be nil.
func NewServer(st *store.Store, issuer *auth.Issuer, loc *time.Location, ai Completer) *Server {
	if loc == nil {
		loc = time.Local
	}
	server := &Server{
		Store:    st,
		Issuer:   issuer,
		AI:       ai,
		Hub:      NewHub(),
		Location: loc,
		now:      time.Now,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		events: make(chan store.Event, 64),
	}

	go server.broadcastLoop()
	st.AddHook(server.BroadcastHook())

	return server
}

// today is the current calendar day in the configured zone.
func (s *Server) today() habit.Date {
	return habit.DateOf(s.now().In(s.Location))
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SetupRoutes configures all HTTP routes for the server
func (s *Server) SetupRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/connect", s.WebsocketHandler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.RegisterHandler)
		r.Post("/login", s.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.requireUser)

			r.Get("/habits", s.ListHabitsHandler)
			r.Post("/habits", s.CreateHabitHandler)
			r.Route("/habits/{id}", func(r chi.Router) {
				r.Get("/", s.GetHabitHandler)
				r.Delete("/", s.DeleteHabitHandler)
				r.Post("/toggle", s.ToggleDayHandler)
				r.Put("/days/{date}", s.SetDayHandler)
				r.Get("/metrics", s.HabitMetricsHandler)
				r.Get("/trend", s.TrendHandler)
				r.Get("/calendar", s.CalendarHandler)
			})
			r.Get("/week", s.WeekHandler)
			r.Get("/overview", s.OverviewHandler)
			r.Get("/insight", s.InsightHandler)
		})
	})

	return r
}
