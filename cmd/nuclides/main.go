package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/nuclides/internal/catalog"
	"github.com/alexanderramin/nuclides/internal/cli"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// The catalog is built once, before any command runs.
	c, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	app := &cli.App{
		Catalog: c,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
