// Package main provides the entry point for the comic relayout tool.
//
// Usage:
//
//	generate <input.png> <output-dir>
package main

import (
	"context"
	"os"
	"os/signal"

	"comic-relayout/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return cli.ExecuteContext(ctx)
}
