package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"habits/internal/auth"
)

// NewUserCommand groups account commands.
func NewUserCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserAddCommand(rootOpts))
	return cmd
}

func newUserAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <password>",
		Short: "Register an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := auth.Registration{Name: args[0], Password: args[1], ConfirmPassword: args[1]}
			if err := reg.Validate(); err != nil {
				return err
			}
			st, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			if err := st.CreateUser(reg.Name, reg.Password); err != nil {
				return fmt.Errorf("user %q: %w", reg.Name, err)
			}

			result := map[string]string{"name": reg.Name}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "Created user %s\n", reg.Name)
				return err
			})
		},
	}
}
