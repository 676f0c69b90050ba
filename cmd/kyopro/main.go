package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/kyopro/internal/cli"
)

var version = "dev"

// Exit statuses.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup; main exits only after it returns.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version); err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		return exitFailure
	}

	return exitOK
}
