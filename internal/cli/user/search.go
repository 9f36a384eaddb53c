package user

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	userservice "github.com/tarealabs/tarea/internal/services/user"
)

// SearchCmd returns the user search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <partial-username> <partial-email>",
		Short: "Find a user by username or email fragment",
		Long: `Find the first user whose username contains the first fragment or
whose email contains the second.

Examples:
  # Match on either fragment
  tarea user search ali @mail.com
`,
		RunE: runSearch,
		Args: cobra.ExactArgs(2),
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	u, err := application.UserService.Search(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			fmt.Printf("No user found with username containing %q or email containing %q\n", args[0], args[1])
			return nil
		}
		return err
	}

	fmt.Println(u)
	return nil
}
