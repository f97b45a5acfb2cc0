package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"habits/internal/habit"
	"habits/internal/stats"
)

// Report is the overview of one user plus the metrics of each habit.
type Report struct {
	User    string        `json:"user"`
	Summary stats.Summary `json:"summary"`
	Habits  []HabitReport `json:"habits"`
}

// HabitReport is one row of the report.
type HabitReport struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Today   habit.Status  `json:"today"`
	Metrics stats.Metrics `json:"metrics"`
}

// BuildReport computes the report of list as of ref. Month counters use ref's month.
func BuildReport(user string, list []*habit.Habit, ref habit.Date) Report {
	report := Report{
		User:    user,
		Summary: stats.Overview(list, ref),
		Habits:  make([]HabitReport, 0, len(list)),
	}
	for _, h := range list {
		report.Habits = append(report.Habits, HabitReport{
			ID:      h.ID,
			Name:    h.Name,
			Today:   h.Status(ref),
			Metrics: stats.HabitMetrics(h, ref, ref.Year, ref.Month),
		})
	}
	return report
}

// NewReportCommand prints the analysis screen for a user.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	var user, date string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show streaks, success rates and the best weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, name, err := openUser(rootOpts, user)
			if err != nil {
				return err
			}
			ref, err := rootOpts.day(date)
			if err != nil {
				return err
			}
			report := BuildReport(name, st.ListHabits(name), ref)

			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(report, func(w io.Writer) error {
				return writeReport(w, report)
			})
		},
	}
	cmd.Flags().StringVarP(&user, "user", "u", "", "account to report on")
	cmd.Flags().StringVar(&date, "date", "", "reference day (YYYY-MM-DD, default today)")
	return cmd
}

func writeReport(w io.Writer, r Report) error {
	s := r.Summary
	fmt.Fprintf(w, "Report for %s on %s (%s)\n", r.User, s.Date, s.Date.Weekday())
	fmt.Fprintf(w, "Today %d%%  Streak %d  Last 7 days %d%%  Best day %s\n\n",
		s.TodayRate, s.CurrentStreak, s.WeeklyRate, s.BestDay.Name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, bar := range s.Week {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%d/%d\n", bar.Label, bar.Date, bar.Performance, bar.Completed, bar.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Habits) == 0 {
		_, err := fmt.Fprintln(w, "\nNo habits yet.")
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HABIT\tTODAY\tSTREAK\tBEST\t30 DAYS\tMONTH")
	for _, h := range r.Habits {
		m := h.Metrics
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d%%\t%d/%d\n",
			h.Name, h.Today, m.CurrentStreak, m.BestStreak, m.SuccessRate, m.MonthCompleted, m.DaysInMonth)
	}
	return tw.Flush()
}
