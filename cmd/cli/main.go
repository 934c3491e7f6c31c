package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/farecompare/internal/cli"
	"github.com/Domenick1991/farecompare/internal/logging"
	"github.com/Domenick1991/farecompare/internal/service/fares"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The menu owns stdout, so service logs go to stderr and only when asked for.
	var logOut io.Writer = io.Discard
	if os.Getenv("LOG_LEVEL") != "" {
		logOut = os.Stderr
	}
	logger := logging.New(logOut, os.Getenv("LOG_LEVEL"), "text")

	app := cli.New(fares.NewFareService(fares.WithLogger(logger)), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
