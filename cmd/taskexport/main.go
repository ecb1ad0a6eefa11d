package main

import (
	"fmt"
	"os"

	"task-export/internal/cli"
	"task-export/internal/config"
)

func main() {
	root := cli.NewRootCommand(config.NewLoader(), cli.OpenApp)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
