package main

import (
	"context"
	"fmt"
	"os"

	"mask/internal/app"
	"mask/internal/cli"
)

func main() {
	service, err := app.NewService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mask: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	root := cli.New(os.Stdout, os.Stderr, service).Root()
	if err := root.ExecuteContext(context.Background()); err != nil {
		if !cli.ChildExit(err) {
			fmt.Fprintf(os.Stderr, "mask: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
