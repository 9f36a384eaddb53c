package user

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
)

// PageCmd returns the user page subcommand
func PageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page [limit] [offset]",
		Short: "List one page of users",
		Long: `List one page of users, ordered by id. Limit defaults to 10 and
offset to 0.

Examples:
  # First ten users
  tarea user page

  # Second page of two
  tarea user page 2 2
`,
		RunE: runPage,
		Args: cobra.MaximumNArgs(2),
	}

	return cmd
}

func runPage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit, offset := 10, 0
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid limit: %s", args[0])
		}
		limit = parsed
	}
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid offset: %s", args[1])
		}
		offset = parsed
	}

	application, cleanup, err := cli.GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	users, err := application.UserService.Page(ctx, limit, offset)
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Println("No users found with the given pagination parameters.")
		return nil
	}

	for _, u := range users {
		fmt.Println(u)
	}
	return nil
}
