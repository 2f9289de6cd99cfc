package main

import (
	"fmt"
	"os"

	"daybook/internal/cli"
)

func main() {
	// If no args, launch the watch TUI; otherwise route to the CLI.
	if len(os.Args) == 1 {
		if err := cli.RunDefault(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
