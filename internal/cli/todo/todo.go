package todo

import (
	"github.com/spf13/cobra"
)

// TodoCmd returns the todo parent command
func TodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ToggleCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(CompleteAllCmd())
	cmd.AddCommand(CategoriesCmd())

	return cmd
}
