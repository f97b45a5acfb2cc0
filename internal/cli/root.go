package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"habits/internal/auth"
	"habits/internal/habit"
	"habits/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Data   string
	Format string // "text" | "json" | "yaml"
	TZ     string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for habitsctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "habitsctl",
		Short: "Manage habits from the command line",
		Long:  "Operator tool for the habits data file: users, habits, day marks and reports.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if _, err := time.LoadLocation(opts.TZ); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", opts.TZ, err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Data, "data", "habits.json", "path to the data file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.TZ, "tz", "Local", "timezone that decides the current day")

	cmd.AddCommand(NewUserCommand(opts))
	cmd.AddCommand(NewHabitCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}

func (o *RootOptions) openStore() (*store.Store, error) {
	return store.Open(o.Data)
}

// day resolves a --date flag, falling back to today in the configured zone.
func (o *RootOptions) day(value string) (habit.Date, error) {
	if value != "" {
		return habit.ParseDate(value)
	}
	loc, err := time.LoadLocation(o.TZ)
	if err != nil {
		return habit.Date{}, err
	}
	return habit.DateOf(time.Now().In(loc)), nil
}

// openUser opens the store for an existing account. The name is normalised the same
// way registration stores it and returned for later lookups.
func openUser(opts *RootOptions, user string) (*store.Store, string, error) {
	user = auth.NormalizeName(user)
	if user == "" {
		return nil, "", fmt.Errorf("--user is required")
	}
	st, err := opts.openStore()
	if err != nil {
		return nil, "", err
	}
	if !st.UserExists(user) {
		return nil, "", fmt.Errorf("user %q: %w", user, store.ErrNotFound)
	}
	return st, user, nil
}
