package task

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/nucleus/adapter/cli"
	"github.com/felixgeelhaar/nucleus/internal/tasks/application"
	"github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	updateTitle       string
	updateDescription string
	updateStatus      string
	updatePriority    string
	updateDue         string
	clearDue          bool
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update task fields",
	Long: `Apply a partial update to a task. Only the flags you pass are
changed; everything else stays as it is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid task id %q: %w", args[0], err)
		}

		patch := application.TaskPatch{ClearDueDate: clearDue}
		if cmd.Flags().Changed("title") {
			patch.Title = &updateTitle
		}
		if cmd.Flags().Changed("description") {
			patch.Description = &updateDescription
		}
		if updateStatus != "" {
			status, err := domain.ParseStatus(updateStatus)
			if err != nil {
				return fmt.Errorf("unknown status %q", updateStatus)
			}
			patch.Status = &status
		}
		if updatePriority != "" {
			priority, err := domain.ParsePriority(updatePriority)
			if err != nil {
				return fmt.Errorf("unknown priority %q", updatePriority)
			}
			patch.Priority = &priority
		}
		if updateDue != "" {
			parsed, err := time.Parse("2006-01-02", updateDue)
			if err != nil {
				return fmt.Errorf("invalid due date format (use YYYY-MM-DD): %w", err)
			}
			patch.DueDate = &parsed
		}

		res := app.Tasks.Update(cmd.Context(), id, patch)
		if !res.IsOk() {
			return fmt.Errorf("failed to update task (code %d): %w", res.Code(), res.Err())
		}

		updated := res.Value()
		fmt.Printf("Task updated: %s\n", updated.ID())
		fmt.Printf("  title: %s\n", updated.Title())
		fmt.Printf("  status: %s\n", updated.Status())
		fmt.Printf("  version: %d\n", updated.Version())

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	updateCmd.Flags().StringVar(&updateDescription, "description", "", "new description (empty clears it)")
	updateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "new status (pending, in_progress, completed, archived)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "new priority (none, low, medium, high, urgent)")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "new due date (YYYY-MM-DD)")
	updateCmd.Flags().BoolVar(&clearDue, "clear-due", false, "clear the due date")
}
