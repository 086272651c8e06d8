package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vitshowcase/showcase-go/internal/cli"
)

func main() {
	// An interrupt cancels in-flight requests instead of abandoning them.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Execute(ctx))
}
