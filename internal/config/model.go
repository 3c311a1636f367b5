// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/geo/r2"
)

// ErrFieldNotFound is returned by Model.Field for an unknown or ambiguous
// field name.
var ErrFieldNotFound = errors.New("field not found")

// Model is the unified representation of everything loaded: all fields and
// the one vehicle group.
type Model struct {
	Fields []*Field
	Group  *Group
}

// Field is the format-agnostic representation of a `field` block.
type Field struct {
	Name     string
	Boundary []r2.Point
	Islands  []*Island
	FilePath string
}

// Island is an obstacle inside a field.
type Island struct {
	Name    string
	Outline []r2.Point
}

// Group is the format-agnostic representation of the `vehicle_group` block.
// Zero values of the optional settings mean "use the default".
type Group struct {
	Vehicles      int
	Headlands     int
	WorkingWidth  float64
	Position      int
	HeadlandFirst bool
	BypassIslands bool
	// TurningRadius defaults to the working width.
	TurningRadius float64
	// Start defaults to the first boundary vertex of the field.
	Start *r2.Point
	// RowAngle is in degrees.
	RowAngle      float64
	Clockwise     bool
	BigIslandSize float64
	FilePath      string
}

// FieldNames returns the names of all fields, sorted.
func (m *Model) FieldNames() []string {
	names := make([]string, 0, len(m.Fields))
	for _, f := range m.Fields {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Field returns the field called name. An empty name selects the only field
// of a single-field model.
func (m *Model) Field(name string) (*Field, error) {
	if name == "" {
		if len(m.Fields) != 1 {
			return nil, fmt.Errorf("%w: %d fields defined (%v), pick one by name", ErrFieldNotFound, len(m.Fields), m.FieldNames())
		}
		return m.Fields[0], nil
	}
	for _, f := range m.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q, have %v", ErrFieldNotFound, name, m.FieldNames())
}
