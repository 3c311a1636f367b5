// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/coursegridgo/internal/app"
	"github.com/specialistvlad/coursegridgo/internal/export"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("coursegridgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
CourseGridGo - Fieldwork courses for a group of vehicles working side by side.

Usage:
  coursegridgo [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the configuration file or directory.")
	cFlag := flagSet.String("c", "", "Path to the configuration file or directory (shorthand).")
	fieldFlag := flagSet.String("field", "", "Name of the field to plan. May be omitted when only one field is defined.")
	positionFlag := flagSet.Int("position", 0, "Position of the vehicle in the group, overriding the configuration.")
	allFlag := flagSet.Bool("all", false, "Generate the course of every vehicle in the group.")
	parallelFlag := flagSet.Bool("parallel", false, "Connect the headlands of all vehicles concurrently.")
	formatFlag := flagSet.String("format", "yaml", "Output format. Options: 'yaml' or 'json'.")
	outputFlag := flagSet.String("output", "", "File to write the courses to. Defaults to standard output.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Config path determined.", "path", path)

	if path == "" {
		slog.Debug("No config path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	// -position 0 is a real slot, so only an explicitly set flag overrides.
	var position *int
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "position" {
			position = positionFlag
		}
	})

	format, err := export.ParseFormat(*formatFlag)
	if err != nil {
		return nil, false, usageError("invalid format: %v", err)
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		Field:      *fieldFlag,
		Position:   position,
		All:        *allFlag,
		Parallel:   *parallelFlag,
		Format:     format,
		OutputPath: *outputFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, usageError("%v", err)
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
