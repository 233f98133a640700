package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/profit-atlas/pkg/runtime/terminal"
	"github.com/de-tools/profit-atlas/pkg/runtime/terminal/commands"
	reportsvc "github.com/de-tools/profit-atlas/pkg/services/report"
)

const ratesURL = "https://api.frankfurter.app/latest?from=EUR&to=USD"

func main() {
	factory := reportsvc.NewFactory(ratesURL)

	cli := terminal.NewCLI(terminal.Options{
		Factory: func(ctx context.Context, profilePath, costsPath string) (commands.Generator, error) {
			return factory.Create(ctx, profilePath, costsPath)
		},
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
