package cli

import (
	"fmt"

	tasksDomain "github.com/felixgeelhaar/nucleus/internal/tasks/domain"
	usersDomain "github.com/felixgeelhaar/nucleus/internal/users/domain"
	"github.com/spf13/cobra"
)

// demoCmd walks through a create -> update -> delete lifecycle and a
// duplicate registration, printing the success or failure branch of each
// result.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the task and user lifecycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}
		ctx := cmd.Context()

		fmt.Println("== Task lifecycle ==")
		created := app.Tasks.Create(ctx, tasksDomain.CreateTaskRequest{Title: "Write spec"})
		if !created.IsOk() {
			return fmt.Errorf("create failed (code %d): %w", created.Code(), created.Err())
		}
		task := created.Value()
		fmt.Printf("created %q: version=%d status=%s\n", task.Title(), task.Version(), task.Status())

		updated := app.Tasks.UpdateStatus(ctx, task.ID(), tasksDomain.StatusInProgress)
		if !updated.IsOk() {
			return fmt.Errorf("update failed (code %d): %w", updated.Code(), updated.Err())
		}
		fmt.Printf("updated: version=%d status=%s\n", updated.Value().Version(), updated.Value().Status())

		deleted := app.Tasks.Delete(ctx, task.ID())
		fmt.Printf("deleted: %t\n", deleted.Value())
		if again := app.Tasks.Delete(ctx, task.ID()); !again.Value() {
			fmt.Println("second delete: already gone")
		}

		fmt.Println("== User uniqueness ==")
		first := app.Users.Register(ctx, usersDomain.RegisterUserRequest{Email: "demo@example.com", Name: "Demo User"})
		if !first.IsOk() {
			return fmt.Errorf("register failed (code %d): %w", first.Code(), first.Err())
		}
		fmt.Printf("registered %s\n", first.Value().Email())

		dup := app.Users.Register(ctx, usersDomain.RegisterUserRequest{Email: "demo@example.com", Name: "Impostor"})
		if dup.IsOk() {
			return fmt.Errorf("duplicate registration unexpectedly succeeded")
		}
		fmt.Printf("duplicate rejected (code %d): %v\n", dup.Code(), dup.Err())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
