/*
Package main
File: main.go
Description: Entry point. Builds the command tree and cancels it on
SIGINT/SIGTERM so a running server shuts down cleanly.
*/

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/everforgeworks/galaxies-exolog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
