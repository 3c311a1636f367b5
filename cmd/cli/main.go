// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/coursegridgo/internal/app"
	"github.com/specialistvlad/coursegridgo/internal/cli"
	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/hcl"
)

// main is the entrypoint for the coursegridgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Courses go to outW; usage text and logs go to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	courseApp, err := startApp(outW, errW, appConfig, hcl.NewLoader())
	if err != nil {
		return err
	}

	return courseApp.Run(ctx)
}

// startApp builds the app. NewApp panics on critical config errors; the
// panic is turned into an error so the user gets a clean message and exit
// code.
func startApp(outW, errW io.Writer, cfg *app.Config, loader config.Loader) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()
	return app.NewApp(outW, errW, cfg, loader), nil
}
