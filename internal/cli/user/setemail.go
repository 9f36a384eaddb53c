package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// SetEmailCmd returns the user set-email subcommand
func SetEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-email <username> <new-email>",
		Short: "Update a user's email address",
		Long: `Update a user's email address. The same uniqueness rule as user
create applies to the new address.

Examples:
  # Change alice's email
  tarea user set-email alice alice@example.com
`,
		RunE: runSetEmail,
		Args: cobra.ExactArgs(2),
	}

	return cmd
}

func runSetEmail(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = application.UserService.ChangeEmail(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			fmt.Printf("%s not found! Unable to update email.\n", args[0])
			return nil
		}
		if errors.Is(err, userservice.ErrDuplicateEmail) {
			fmt.Printf("Error: A user with the email '%s' already exists.\n", args[1])
			return nil
		}
		return err
	}

	fmt.Printf("Updated %s's email to %s\n", args[0], args[1])
	return nil
}
