package category

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	categoryservice "github.com/tarealabs/tarea/internal/services/category"
)

// ListCmd returns the category list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <username>",
		Short: "List a user's categories",
		Long: `List the texts of all of a user's categories.

Examples:
  # Show alice's categories
  tarea category list alice
`,
		RunE: runList,
		Args: cobra.ExactArgs(1),
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

	categories, err := application.CategoryService.ListForUser(ctx, args[0])
	if err != nil {
		if errors.Is(err, categoryservice.ErrUserNotFound) {
			fmt.Println("User doesn't exist")
			return nil
		}
		return err
	}

	texts := make([]string, len(categories))
	for i, c := range categories {
		texts[i] = c.Text
	}
	fmt.Printf("%v\n", texts)
	return nil
}
