package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tarealabs/tarea/internal/cli"
	categorycli "github.com/tarealabs/tarea/internal/cli/category"
	todocli "github.com/tarealabs/tarea/internal/cli/todo"
	usercli "github.com/tarealabs/tarea/internal/cli/user"
)

var rootCmd = &cobra.Command{
	Use:   "tarea",
	Short: "Tarea - a command line todo tracker",
	Long:  `Tarea is a command line todo tracker for users, todos and categories, backed by a local SQLite database.`,
}

func init() {
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(usercli.UserCmd())
	rootCmd.AddCommand(todocli.TodoCmd())
	rootCmd.AddCommand(categorycli.CategoryCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
