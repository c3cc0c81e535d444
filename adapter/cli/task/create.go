package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/spf13/cobra"
)

var (
	priority    string
	description string
	dueDate     string
)

var createCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new task",
	Long: `Create a new task with a title and optional properties.

Examples:
  nucleus task create "Complete project report"
  nucleus task create "Review PR" -p high
  nucleus task create "Write docs" --priority medium --due 2026-09-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		req := domain.CreateTaskRequest{
			Title:       args[0],
			Description: description,
			Priority:    priority,
		}

		if dueDate != "" {
			parsed, err := time.Parse("2006-01-02", dueDate)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			req.DueDate = &parsed
		}

		res := app.Tasks.Create(cmd.Context(), req)
		if !res.IsOk() {
			return fmt.Errorf("failed to create task (code %d): %w", res.Code(), res.Err())
		}

		created := res.Value()
		fmt.Printf("Task created: %s\n", created.ID())
		fmt.Printf("  title: %s\n", created.Title())
		fmt.Printf("  status: %s\n", created.Status())
		if created.Priority() != domain.PriorityNone {
			fmt.Printf("  priority: %s\n", created.Priority())
		}
		if created.DueDate() != nil {
			fmt.Printf("  due: %s\n", created.DueDate().Format("2006-01-02"))
		}

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&priority, "priority", "p", "", "task priority (low, medium, high, urgent)")
	createCmd.Flags().StringVar(&description, "description", "", "task description")
	createCmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
}
