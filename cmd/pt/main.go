// Package main is the entry point for the pt CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/pt/internal/app"
	"github.com/runoshun/pt/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run() error {
	home, err := app.ResolveHome()
	if err != nil {
		return err
	}

	// Create dependency injection container
	container, err := app.New(home)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
