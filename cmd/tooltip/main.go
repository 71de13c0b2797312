// Package main provides the tooltip CLI.
//
// Usage:
//
//	tooltip place [flags]      Compute one placement and print it as JSON
//	tooltip preview [flags]    Run the interactive terminal preview
//	tooltip version            Print version information
//
// Examples:
//
//	tooltip place --target 10,2,8,1 --viewport 80,24 --overlay 20,3
//	tooltip place --config tip.toml --direction left
//	tooltip preview --config tip.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
