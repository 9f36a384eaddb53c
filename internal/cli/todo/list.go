package todo

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
)

// ListCmd returns the todo list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all todos",
		Long: `List every todo with its owner. Todos whose owner was deleted
still list, with an empty user column.

Examples:
  # Show all todos
  tarea todo list
`,
		RunE: runList,
		Args: cobra.NoArgs,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	todos, err := application.TodoService.List(ctx)
	if err != nil {
		return err
	}

	// An empty table prints nothing
	for _, item := range todos {
		fmt.Printf("ID: %d | Text: %s | User: %s | Done: %t\n",
			item.ID, item.Text, item.Username, item.Done)
	}
	return nil
}
