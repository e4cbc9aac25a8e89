package main

import (
	"fmt"
	"os"

	"github.com/de-tools/fact-atlas/pkg/runtime/terminal"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: loader.NewRegistry(map[string]loader.LoaderFactory{
			"json": loader.JSONFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
