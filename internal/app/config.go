// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"errors"

	"github.com/specialistvlad/coursegridgo/internal/export"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory
	Field      string // empty selects the only field

	// Position overrides the position of the vehicle_group block.
	Position *int
	// All emits a course for every position of the group.
	All      bool
	Parallel bool

	Format     export.Format
	OutputPath string // empty writes to the App's output writer

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = export.FormatYAML
	}
	if _, err := export.ParseFormat(string(cfg.Format)); err != nil {
		return nil, err
	}
	if cfg.All && cfg.Position != nil {
		return nil, errors.New("a position cannot be combined with all positions")
	}
	return &cfg, nil
}
