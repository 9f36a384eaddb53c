// Package cli wires cobra commands to the application container.
//
// Commands resolve their services through GetApp, which lets integration
// tests swap in an in-memory database.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/database"
)

// InitCmd returns the root-level init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the database",
		Long: `Drop and recreate all tables, then seed a default user.

Existing data is destroyed.

Examples:
  # Reset the database
  tarea init
`,
		RunE: runInit,
		Args: cobra.NoArgs,
	}

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	application, cleanup, err := GetApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Initialize(ctx, application.DB()); err != nil {
		return err
	}

	fmt.Println("Database Initialized")
	return nil
}
