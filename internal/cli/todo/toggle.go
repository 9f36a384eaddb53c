package todo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	todoservice "github.com/tarealabs/tarea/internal/services/todo"
)

// ToggleCmd returns the todo toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <todo_id> <username>",
		Short: "Flip a todo's done state",
		Long: `Flip a todo between done and not done. The todo must belong to
the named user.

Examples:
  # Mark todo 3 done (or undone)
  tarea todo toggle 3 alice
`,
		RunE: runToggle,
		Args: cobra.ExactArgs(2),
	}

	return cmd
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid todo ID: %s", args[0])
	}
	username := args[1]

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	done, err := application.TodoService.Toggle(ctx, todoID, username)
	if err != nil {
		if errors.Is(err, todoservice.ErrTodoNotFound) {
			fmt.Println("This todo doesn't exist")
			return nil
		}
		if errors.Is(err, todoservice.ErrOwnershipMismatch) {
			fmt.Printf("This todo doesn't belong to %s\n", username)
			return nil
		}
		return err
	}

	fmt.Printf("Todo item's done state set to %t\n", done)
	return nil
}
