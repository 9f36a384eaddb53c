package category

import (
	"github.com/spf13/cobra"
)

// CategoryCmd returns the category parent command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AssignCmd())

	return cmd
}
