// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. Courses are written to
// outW, logs to logW. A configuration that cannot be loaded is a fatal
// startup error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "fields", model.FieldNames())

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
	}
}

// Model returns the loaded configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
