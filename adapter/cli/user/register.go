package user

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/spf13/cobra"
)

var role string

var registerCmd = &cobra.Command{
	Use:   "register [email] [name]",
	Short: "Register a new user",
	Long: `Register a user with a unique email address.

Examples:
  nucleus user register ada@example.com "Ada Lovelace"
  nucleus user register grace@example.com "Grace Hopper" --role admin`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		req := domain.RegisterUserRequest{
			Email: args[0],
			Name:  args[1],
			Role:  role,
		}

		res := app.Users.Register(cmd.Context(), req)
		if !res.IsOk() {
			return fmt.Errorf("failed to register user (code %d): %w", res.Code(), res.Err())
		}

		created := res.Value()
		fmt.Printf("User registered: %s\n", created.ID())
		fmt.Printf("  email: %s\n", created.Email())
		fmt.Printf("  name: %s\n", created.Name())
		fmt.Printf("  role: %s\n", created.Role())

		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&role, "role", "r", "", "user role (member, admin)")
}
