// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang/geo/r2"
)

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("invalid course configuration")

// ConfigError reports a setting that cannot produce a course.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid course configuration: %s: %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) true for every ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Settings is the validated configuration of one vehicle in a group. It is
// a plain value: copies do not share state.
type Settings struct {
	Vehicles  int // group size, at least 1
	Headlands int // requested rings; New rounds it up to a multiple of Vehicles
	// WorkingWidth is the width of a single vehicle.
	WorkingWidth float64
	// Position is the vehicle's signed slot, see ValidPositions.
	Position      int
	HeadlandFirst bool
	BypassIslands bool
	StartLocation r2.Point
	TurningRadius float64

	// RowAngle is the direction of the center rows in radians.
	RowAngle float64
	// Clockwise drives headland rings clockwise.
	Clockwise bool
	// BigIslandSize is the bounding box length from which an island counts
	// as big.
	BigIslandSize float64
	// Parallel connects the headland paths of all vehicles concurrently.
	Parallel bool
}

// RowSpacing is the distance between two center rows: the width of the
// whole group.
func (s Settings) RowSpacing() float64 {
	return s.WorkingWidth * float64(s.Vehicles)
}

// RowWidth is the width covered by one center row.
func (s Settings) RowWidth() float64 {
	return s.WorkingWidth * float64(s.Vehicles)
}

// HeadlandWidth is the width of a single headland ring.
func (s Settings) HeadlandWidth() float64 {
	return s.WorkingWidth
}

// HeadlandIndex is the partition index of the configured vehicle.
func (s Settings) HeadlandIndex() int {
	return PositionToHeadlandIndex(s.Position, s.Vehicles)
}

// Validate checks every field and returns the first problem as a
// ConfigError.
func (s Settings) Validate() error {
	switch {
	case s.Vehicles < 1:
		return &ConfigError{Field: "vehicles", Reason: fmt.Sprintf("must be at least 1, got %d", s.Vehicles)}
	case s.Headlands < 0:
		return &ConfigError{Field: "headlands", Reason: fmt.Sprintf("must not be negative, got %d", s.Headlands)}
	case s.WorkingWidth <= 0:
		return &ConfigError{Field: "working_width", Reason: fmt.Sprintf("must be positive, got %v", s.WorkingWidth)}
	case s.TurningRadius <= 0:
		return &ConfigError{Field: "turning_radius", Reason: fmt.Sprintf("must be positive, got %v", s.TurningRadius)}
	case s.BigIslandSize < 0:
		return &ConfigError{Field: "big_island_size", Reason: fmt.Sprintf("must not be negative, got %v", s.BigIslandSize)}
	}
	return ValidatePosition(s.Position, s.Vehicles)
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("vehicles", s.Vehicles),
		slog.Int("headlands", s.Headlands),
		slog.Float64("working_width", s.WorkingWidth),
		slog.Int("position", s.Position),
		slog.Bool("headland_first", s.HeadlandFirst),
		slog.Bool("bypass_islands", s.BypassIslands),
	)
}

// Builder assembles Settings. Setters can be chained; Build validates the
// result.
type Builder struct {
	s Settings
}

// NewBuilder starts from a single vehicle working headlands first.
func NewBuilder() *Builder {
	return &Builder{s: Settings{Vehicles: 1, HeadlandFirst: true}}
}

func (b *Builder) SetVehicles(n int) *Builder           { b.s.Vehicles = n; return b }
func (b *Builder) SetHeadlands(n int) *Builder          { b.s.Headlands = n; return b }
func (b *Builder) SetWorkingWidth(w float64) *Builder   { b.s.WorkingWidth = w; return b }
func (b *Builder) SetPosition(p int) *Builder           { b.s.Position = p; return b }
func (b *Builder) SetHeadlandFirst(v bool) *Builder     { b.s.HeadlandFirst = v; return b }
func (b *Builder) SetBypassIslands(v bool) *Builder     { b.s.BypassIslands = v; return b }
func (b *Builder) SetStartLocation(p r2.Point) *Builder { b.s.StartLocation = p; return b }
func (b *Builder) SetTurningRadius(r float64) *Builder  { b.s.TurningRadius = r; return b }
func (b *Builder) SetRowAngle(rad float64) *Builder     { b.s.RowAngle = rad; return b }
func (b *Builder) SetClockwise(v bool) *Builder         { b.s.Clockwise = v; return b }
func (b *Builder) SetBigIslandSize(s float64) *Builder  { b.s.BigIslandSize = s; return b }
func (b *Builder) SetParallel(v bool) *Builder          { b.s.Parallel = v; return b }

// Build returns the validated snapshot. Later calls to setters do not affect
// a Settings value already returned.
func (b *Builder) Build() (Settings, error) {
	s := b.s
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
