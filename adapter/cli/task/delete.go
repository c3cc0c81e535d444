package task

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q: %w", args[0], err)
		}

		res := app.Tasks.Delete(cmd.Context(), id)
		if !res.IsOk() {
			return fmt.Errorf("failed to delete task (code %d): %w", res.Code(), res.Err())
		}

		if res.Value() {
			fmt.Printf("Task deleted: %s\n", id)
		} else {
			fmt.Printf("No task with id %s\n", id)
		}

		return nil
	},
}
