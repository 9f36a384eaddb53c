package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	todoservice "github.com/tarealabs/tarea/internal/services/todo"
)

// CompleteAllCmd returns the todo complete-all subcommand
func CompleteAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete-all <username>",
		Short: "Mark all of a user's todos done",
		Long: `Mark every todo belonging to a user as done in one update.
Running it again is a no-op.

Examples:
  # Finish everything for alice
  tarea todo complete-all alice
`,
		RunE: runCompleteAll,
		Args: cobra.ExactArgs(1),
	}

	return cmd
}

func runCompleteAll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	username := args[0]

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = application.TodoService.CompleteAll(ctx, username)
	if err != nil {
		if errors.Is(err, todoservice.ErrUserNotFound) {
			fmt.Printf("User %s does not exist\n", username)
			return nil
		}
		return err
	}

	fmt.Printf("All todos for %s marked as complete\n", username)
	return nil
}
