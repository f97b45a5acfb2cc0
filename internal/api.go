package habits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"

	"habits/internal/auth"
	"habits/internal/habit"
	"habits/internal/store"
)

type ctxKey struct{}

// ErrorResponse is the JSON error envelope of every API failure.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// writeStoreError maps store sentinels to statuses.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, store.ErrUserExists):
		writeError(w, r, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, store.ErrInvalidCredentials):
		writeError(w, r, http.StatusUnauthorized, "unauthorized", err.Error())
	default:
		log.Error("Store operation failed", "path", r.URL.Path, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

// referenceDate reads ?date=YYYY-MM-DD, defaulting to today.
func (s *Server) referenceDate(w http.ResponseWriter, r *http.Request) (habit.Date, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return s.today(), true
	}
	d, err := habit.ParseDate(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return habit.Date{}, false
	}
	return d, true
}

func userFrom(ctx context.Context) string {
	user, _ := ctx.Value(ctxKey{}).(string)
	return user
}

// requireUser rejects requests without a valid session token.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.Issuer.Parse(auth.ExtractToken(r))
		if err != nil || !s.Store.UserExists(user) {
			writeError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, user)))
	})
}

// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce plain
// @Success 200 {string} string "Healthy"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Healthy"))
}

// @Summary Register a user
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.Registration true "Sign-up form"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var form auth.Registration
	if !decodeJSON(w, r, &form) {
		return
	}
	if err := form.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if err := s.Store.CreateUser(form.Name, form.Password); err != nil {
		writeStoreError(w, r, err)
		return
	}
	log.Info("User registered", "user", form.Name)

	s.respondWithToken(w, r, http.StatusCreated, form.Name)
}

// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body auth.Credentials true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	if err := creds.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	if err := s.Store.Authenticate(creds.Name, creds.Password); err != nil {
		log.Warn("Login rejected", "user", creds.Name)
		writeStoreError(w, r, err)
		return
	}

	s.respondWithToken(w, r, http.StatusOK, creds.Name)
}

func (s *Server) respondWithToken(w http.ResponseWriter, r *http.Request, status int, user string) {
	token, err := s.Issuer.Issue(user)
	if err != nil {
		log.Error("Failed to issue token", "user", user, "error", err)
		writeError(w, r, http.StatusInternalServerError, "internal", "failed to issue token")
		return
	}
	writeJSON(w, status, TokenResponse{Token: token, Name: user})
}
