package main

import (
	"context"
	"os"

	"github.com/decorator-app/bumpver/internal/cli"
	"github.com/decorator-app/bumpver/internal/config"
	"github.com/decorator-app/bumpver/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads the optional configuration and runs the root command.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}
	return cli.New(cfg).Run(context.Background(), args)
}
