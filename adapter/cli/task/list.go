package task

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/spf13/cobra"
)

var (
	listStatus   string
	listPriority string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in insertion order, optionally filtered by status or
priority.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		var filter domain.TaskFilter
		if listStatus != "" {
			status, err := domain.ParseStatus(listStatus)
			if err != nil {
				return fmt.Errorf("unknown status %q", listStatus)
			}
			filter.Status = &status
		}
		if listPriority != "" {
			priority, err := domain.ParsePriority(listPriority)
			if err != nil {
				return fmt.Errorf("unknown priority %q", listPriority)
			}
			filter.Priority = &priority
		}

		res := app.Tasks.List(cmd.Context(), filter)
		if !res.IsOk() {
			return fmt.Errorf("failed to list tasks (code %d): %w", res.Code(), res.Err())
		}

		tasks := res.Value()
		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		for _, t := range tasks {
			fmt.Printf("%s  [%s]  v%d  %s\n", t.ID(), t.Status(), t.Version(), t.Title())
		}
		fmt.Printf("%d task(s)\n", len(tasks))

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listStatus, "status", "s", "", "filter by status (pending, in_progress, completed, archived)")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "filter by priority (none, low, medium, high, urgent)")
}
