package task

import (
	"fmt"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts per status and priority",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		res := app.Tasks.Metrics(cmd.Context())
		if !res.IsOk() {
			return fmt.Errorf("failed to compute stats (code %d): %w", res.Code(), res.Err())
		}

		metrics := res.Value()
		fmt.Printf("Tasks: %d\n", metrics.Total)
		fmt.Println("By status:")
		for _, status := range domain.AllStatuses() {
			fmt.Printf("  %-12s %d\n", status.String(), metrics.ByStatus[status.String()])
		}
		fmt.Println("By priority:")
		for _, priority := range domain.AllPriorities() {
			fmt.Printf("  %-12s %d\n", priority.String(), metrics.ByPriority[priority.String()])
		}

		return nil
	},
}
