// Package user holds all cli commands related to users
//
// e.g., tarea user ...
package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// CreateCmd returns the user create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <username> <email> <password>",
		Short: "Create a new user",
		Long: `Create a new user. The password is stored as a bcrypt hash.

Usernames and emails are unique; a clash is reported without touching
existing users.

Examples:
  # Create a user
  tarea user create alice alice@mail.com secret
`,
		RunE: runCreate,
		Args: cobra.ExactArgs(3),
	}

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	created, err := application.UserService.Create(ctx, userservice.CreateUserRequest{
		Username: args[0],
		Email:    args[1],
		Password: args[2],
	})
	if err != nil {
		if errors.Is(err, userservice.ErrDuplicateUser) {
			fmt.Printf("Error: A user with the username '%s' already exists.\n", args[0])
			return nil
		}
		return err
	}

	fmt.Println(created)
	return nil
}
