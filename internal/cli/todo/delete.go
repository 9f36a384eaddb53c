package todo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	todoservice "github.com/tarealabs/tarea/internal/services/todo"
)

// DeleteCmd returns the todo delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <todo_id>",
		Short: "Delete a todo",
		Long: `Delete a todo by id. Its category associations are removed with
it.

Examples:
  # Remove todo 3
  tarea todo delete 3
`,
		RunE: runDelete,
		Args: cobra.ExactArgs(1),
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	todoID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid todo ID: %s", args[0])
	}

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = application.TodoService.Delete(ctx, todoID)
	if err != nil {
		if errors.Is(err, todoservice.ErrTodoNotFound) {
			fmt.Printf("Todo with ID %d does not exist\n", todoID)
			return nil
		}
		return err
	}

	fmt.Printf("Todo with ID %d deleted\n", todoID)
	return nil
}
