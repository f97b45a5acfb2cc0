package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"habits/internal/habit"
)

// DayResult is the outcome of a toggle.
type DayResult struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Date   habit.Date   `json:"date"`
	Status habit.Status `json:"status"`
}

// NewHabitCommand groups habit commands. All of them act on one user's list.
func NewHabitCommand(rootOpts *RootOptions) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage a user's habits",
	}
	cmd.PersistentFlags().StringVarP(&user, "user", "u", "", "account that owns the habits")

	cmd.AddCommand(newHabitListCommand(rootOpts, &user))
	cmd.AddCommand(newHabitAddCommand(rootOpts, &user))
	cmd.AddCommand(newHabitToggleCommand(rootOpts, &user))
	cmd.AddCommand(newHabitDeleteCommand(rootOpts, &user))
	return cmd
}

func newHabitListCommand(rootOpts *RootOptions, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, name, err := openUser(rootOpts, *user)
			if err != nil {
				return err
			}
			today, err := rootOpts.day("")
			if err != nil {
				return err
			}
			list := st.ListHabits(name)

			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(list, func(w io.Writer) error {
				if len(list) == 0 {
					_, err := fmt.Fprintln(w, "No habits yet.")
					return err
				}
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tTODAY\tMARKED")
				for _, h := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", h.ID, h.Name, h.Status(today), len(h.Completions))
				}
				return tw.Flush()
			})
		},
	}
}

func newHabitAddCommand(rootOpts *RootOptions, user *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a habit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, name, err := openUser(rootOpts, *user)
			if err != nil {
				return err
			}
			h, err := st.CreateHabit(name, strings.Join(args, " "))
			if err != nil {
				return err
			}

			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(h, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Created habit %s (%s)\n", h.Name, h.ID)
				return err
			})
		},
	}
}

func newHabitToggleCommand(rootOpts *RootOptions, user *string) *cobra.Command {
	var id, date string

	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Cycle a day through unmarked, done and failed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, name, err := openUser(rootOpts, *user)
			if err != nil {
				return err
			}
			d, err := rootOpts.day(date)
			if err != nil {
				return err
			}
			h, status, err := st.ToggleDay(name, id, d)
			if err != nil {
				return err
			}

			result := DayResult{ID: h.ID, Name: h.Name, Date: d, Status: status}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%s on %s: %s\n", h.Name, d, status)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "habit id")
	cmd.Flags().StringVar(&date, "date", "", "day to toggle (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newHabitDeleteCommand(rootOpts *RootOptions, user *string) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a habit and its history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, name, err := openUser(rootOpts, *user)
			if err != nil {
				return err
			}
			if err := st.DeleteHabit(name, id); err != nil {
				return err
			}

			result := map[string]string{"id": id}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Deleted habit %s\n", id)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "habit id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
