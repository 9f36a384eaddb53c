package todo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	categoryservice "github.com/tarealabs/tarea/internal/services/category"
)

// CategoriesCmd returns the todo categories subcommand
func CategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories <todo_id> <username>",
		Short: "Show a todo's categories",
		Long: `Show the categories assigned to one of a user's todos.

Examples:
  # Categories on todo 3
  tarea todo categories 3 alice
`,
		RunE: runCategories,
		Args: cobra.ExactArgs(2),
	}

	return cmd
}

func runCategories(cmd *cobra.Command, args []string) error {
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

	categories, err := application.CategoryService.ListForTodo(ctx, todoID, username)
	if err != nil {
		if errors.Is(err, categoryservice.ErrTodoNotFound) {
			fmt.Println("Todo doesn't exist")
			return nil
		}
		if errors.Is(err, categoryservice.ErrOwnershipMismatch) {
			fmt.Println("Todo doesn't belong to that user")
			return nil
		}
		return err
	}

	texts := make([]string, len(categories))
	for i, c := range categories {
		texts[i] = c.Text
	}
	fmt.Printf("Categories: %v\n", texts)
	return nil
}
