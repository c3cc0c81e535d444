package task

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [id]",
	Short: "Mark a task as completed",
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

		res := app.Tasks.UpdateStatus(cmd.Context(), id, domain.StatusCompleted)
		if !res.IsOk() {
			return fmt.Errorf("failed to complete task (code %d): %w", res.Code(), res.Err())
		}

		completed := res.Value()
		fmt.Printf("Task completed: %s (%s)\n", completed.Title(), completed.ID())

		return nil
	},
}
