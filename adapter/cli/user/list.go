package user

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/spf13/cobra"
)

var (
	listRole     string
	activeOnly   bool
	inactiveOnly bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		var filter domain.UserFilter
		if listRole != "" {
			role, err := domain.ParseRole(listRole)
			if err != nil {
				return fmt.Errorf("unknown role %q", listRole)
			}
			filter.Role = &role
		}
		if activeOnly {
			active := true
			filter.Active = &active
		} else if inactiveOnly {
			active := false
			filter.Active = &active
		}

		res := app.Users.List(cmd.Context(), filter)
		if !res.IsOk() {
			return fmt.Errorf("failed to list users (code %d): %w", res.Code(), res.Err())
		}

		users := res.Value()
		if len(users) == 0 {
			fmt.Println("No users found.")
			return nil
		}

		for _, u := range users {
			state := "active"
			if !u.IsActive() {
				state = "inactive"
			}
			fmt.Printf("%s  [%s/%s]  %s <%s>\n", u.ID(), u.Role(), state, u.Name(), u.Email())
		}
		fmt.Printf("%d user(s)\n", len(users))

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listRole, "role", "r", "", "filter by role (member, admin)")
	listCmd.Flags().BoolVar(&activeOnly, "active", false, "only active users")
	listCmd.Flags().BoolVar(&inactiveOnly, "inactive", false, "only inactive users")
}
