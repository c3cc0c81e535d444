package user

import (
	"github.com/spf13/cobra"
)

// Cmd is the user command group
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  `Register, list, deactivate, and manage users.`,
}

func init() {
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deactivateCmd)
	Cmd.AddCommand(statsCmd)
}
