package user

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deactivateCmd = &cobra.Command{
	Use:   "deactivate [id]",
	Short: "Deactivate a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q: %w", args[0], err)
		}

		res := app.Users.Deactivate(cmd.Context(), id)
		if !res.IsOk() {
			return fmt.Errorf("failed to deactivate user (code %d): %w", res.Code(), res.Err())
		}

		deactivated := res.Value()
		fmt.Printf("User deactivated: %s <%s>\n", deactivated.Name(), deactivated.Email())

		return nil
	},
}
