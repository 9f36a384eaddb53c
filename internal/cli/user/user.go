package user

import (
	"github.com/spf13/cobra"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(PageCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(SetEmailCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}
