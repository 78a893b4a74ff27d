// Package main implements the consonant counter command.
package main

import (
	"context"
	"os"

	"github.com/715d/wordtools/internal/cli"
	"github.com/715d/wordtools/internal/tool"
)

func main() {
	t := tool.Default().MustLookup(tool.ConsonantCounter)
	os.Exit(cli.Run(context.Background(), t, os.Args[1:], os.Stdout, os.Stderr, cli.Config{}))
}
