package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-formcode/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := cli.DefaultContext()
	if err := cli.New(c).ExecuteContext(ctx); err != nil {
		cli.PrintError(c.StdErr, err)
		stop()
		os.Exit(1)
	}
}
