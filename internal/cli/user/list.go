package user

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
)

// ListCmd returns the user list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Long: `List every user in insertion order.

Examples:
  # Show all users
  tarea user list
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

	users, err := application.UserService.List(ctx)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	for _, u := range users {
		fmt.Println(u)
	}
	return nil
}
