// Package todo holds all cli commands related to todos
//
// e.g., tarea todo ...
package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	todoservice "github.com/tarealabs/tarea/internal/services/todo"
)

// AddCmd returns the todo add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <username> <text>",
		Short: "Add a todo for a user",
		Long: `Add a todo item for a user. Text is limited to 255 characters.

Examples:
  # Add a todo for alice
  tarea todo add alice "buy milk"
`,
		RunE: runAdd,
		Args: cobra.ExactArgs(2),
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = application.TodoService.Add(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, todoservice.ErrUserNotFound) {
			fmt.Println("User doesn't exist")
			return nil
		}
		return err
	}

	fmt.Println("Task added for user")
	return nil
}
