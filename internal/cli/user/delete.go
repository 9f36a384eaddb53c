package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// DeleteCmd returns the user delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <username>",
		Short: "Delete a user",
		Long: `Delete a user. Their todos and categories are kept and keep
working; the todo list shows them without an owner.

Examples:
  # Remove alice
  tarea user delete alice
`,
		RunE: runDelete,
		Args: cobra.ExactArgs(1),
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = application.UserService.Delete(ctx, args[0])
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			fmt.Printf("%s not found! Unable to delete user.\n", args[0])
			return nil
		}
		return err
	}

	fmt.Printf("Deleted user %s\n", args[0])
	return nil
}
