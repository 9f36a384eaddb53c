package main

import (
	"os"

	"github.com/tarealabs/tarea/cmd"
)

func main() {
	// cobra already printed the error
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
