package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, errPartial):
		os.Exit(2)
	default:
		os.Exit(1)
	}
}
