package habits

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"habits/internal/habit"
	"habits/internal/stats"
)

const coachPrompt = `You are a habit coach. The user tracks small daily habits and wants to keep going.

Based on their numbers, point at the habit that most needs attention today and give one concrete nudge. Keep it to 1-2 plain sentences. No markdown, no headings, no bullet points, no emojis. Just talk like a person.`

// InsightResponse carries the coaching message and the context it was built from.
type InsightResponse struct {
	Date    habit.Date `json:"date"`
	Message string     `json:"message"`
	Context string     `json:"context"`
}

// GatherContext renders the user's numbers as of ref as plain text for the model.
func GatherContext(list []*habit.Habit, ref habit.Date) string {
	var b strings.Builder

	overview := stats.Overview(list, ref)
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Date: %s (%s)\n", ref, ref.Weekday())
	fmt.Fprintf(&b, "- Habits done today: %d%%\n", overview.TodayRate)
	fmt.Fprintf(&b, "- Days in a row with at least one habit done: %d\n", overview.CurrentStreak)
	fmt.Fprintf(&b, "- Last 7 days success: %d%%\n", overview.WeeklyRate)
	fmt.Fprintf(&b, "- Best weekday: %s\n", overview.BestDay.Name)

	if len(list) == 0 {
		b.WriteString("\n## Habits\nNo habits yet.\n")
		return b.String()
	}

	b.WriteString("\n## Habits\n")
	for i, h := range list {
		m := stats.HabitMetrics(h, ref, ref.Year, ref.Month)
		fmt.Fprintf(&b, "%d. %s: today %s, streak %d, best %d, last 30 days %d%%\n",
			i+1, h.Name, h.Status(ref), m.CurrentStreak, m.BestStreak, m.SuccessRate)
	}

	return b.String()
}

// @Summary Coaching insight
// @Description Asks the configured AI model for a short nudge based on the user's metrics
// @Tags stats
// @Produce json
// @Security Bearer
// @Param date query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} InsightResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/insight [get]
func (s *Server) InsightHandler(w http.ResponseWriter, r *http.Request) {
	if s.AI == nil {
		writeError(w, r, http.StatusServiceUnavailable, "unavailable", "insights are not configured")
		return
	}
	ref, ok := s.referenceDate(w, r)
	if !ok {
		return
	}

	user := userFrom(r.Context())
	userMessage := GatherContext(s.Store.ListHabits(user), ref)

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	message, err := s.AI.Complete(ctx, coachPrompt, userMessage)
	if err != nil {
		log.Error("AI insight failed", "user", user, "error", err)
		writeError(w, r, http.StatusBadGateway, "upstream", "insight request failed")
		return
	}
	log.Info("AI insight generated", "user", user, "length", len(message))

	writeJSON(w, http.StatusOK, InsightResponse{Date: ref, Message: message, Context: userMessage})
}
