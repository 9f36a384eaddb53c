// Package category holds all cli commands related to categories
//
// e.g., tarea category ...
package category

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	categoryservice "github.com/tarealabs/tarea/internal/services/category"
)

// CreateCmd returns the category create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <username> <text>",
		Short: "Create a category for a user",
		Long: `Create a category for a user. Each user's category texts are
unique; repeating one is skipped.

Examples:
  # Add a category for alice
  tarea category create alice errands
`,
		RunE: runCreate,
		Args: cobra.ExactArgs(2),
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

	err = application.CategoryService.Create(ctx, args[0], args[1])
	if err != nil {
		if errors.Is(err, categoryservice.ErrUserNotFound) {
			fmt.Println("User doesn't exist")
			return nil
		}
		if errors.Is(err, categoryservice.ErrDuplicateCategory) {
			fmt.Println("Category exists! Skipping creation")
			return nil
		}
		return err
	}

	fmt.Println("Category added for user")
	return nil
}
