package user

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show user counts per role and activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		res := app.Users.Metrics(cmd.Context())
		if !res.IsOk() {
			return fmt.Errorf("failed to compute stats (code %d): %w", res.Code(), res.Err())
		}

		metrics := res.Value()
		fmt.Printf("Users: %d (%d active, %d inactive)\n", metrics.Total, metrics.Active, metrics.Inactive)
		fmt.Println("By role:")
		for _, role := range domain.AllRoles() {
			fmt.Printf("  %-12s %d\n", role.String(), metrics.ByRole[role.String()])
		}

		return nil
	},
}
