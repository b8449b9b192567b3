// Package main is the entry point for the spaceman task tracker.
package main

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/spaceman/cmd/spaceman/commands"
	"go.trai.ch/spaceman/internal/app"
	_ "go.trai.ch/spaceman/internal/wiring"
)

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Args[1:]))
}

func run(ctx context.Context, in io.Reader, args []string, opts ...graft.Option) int {
	// 1. Application components are resolved only when a session starts
	var components *app.Components
	cli := commands.New(func(ctx context.Context) (*app.App, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx, opts...)
		if err != nil {
			return nil, err
		}
		components = c
		return c.App, nil
	})
	defer func() {
		if components == nil {
			return
		}
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	// 2. Interface - CLI
	cli.SetArgs(args)
	cli.SetIn(in)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if components == nil {
			// Logger is not available if initialization failed
			_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
