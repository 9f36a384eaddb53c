package category

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	categoryservice "github.com/tarealabs/tarea/internal/services/category"
)

// AssignCmd returns the category assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <username> <todo_id> <text>",
		Short: "Assign a category to a todo",
		Long: `Assign a category to one of a user's todos, creating the
category first if the user doesn't have it yet. The created category
sticks even when the todo turns out not to exist.

Examples:
  # Tag todo 3 with errands
  tarea category assign alice 3 errands
`,
		RunE: runAssign,
		Args: cobra.ExactArgs(3),
	}

	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	username := args[0]
	todoID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid todo ID: %s", args[1])
	}
	text := args[2]

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	created, err := application.CategoryService.Assign(ctx, username, todoID, text)
	if created {
		// The creation committed before the todo lookup, so report it
		// even when an error follows
		fmt.Println("Category didn't exist for user, creating it")
	}
	if err != nil {
		if errors.Is(err, categoryservice.ErrUserNotFound) {
			fmt.Println("User doesn't exist")
			return nil
		}
		if errors.Is(err, categoryservice.ErrTodoNotFound) {
			fmt.Println("Todo doesn't exist for user")
			return nil
		}
		return err
	}

	fmt.Println("Added category to todo")
	return nil
}
