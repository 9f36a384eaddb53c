package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// GetCmd returns the user get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <username>",
		Short: "Look up a user by exact username",
		Long: `Look up a single user by exact username.

Examples:
  # Show one user
  tarea user get alice
`,
		RunE: runGet,
		Args: cobra.ExactArgs(1),
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	u, err := application.UserService.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			fmt.Printf("%s not found!\n", args[0])
			return nil
		}
		return err
	}

	fmt.Println(u)
	return nil
}
