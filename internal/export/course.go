// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package export

import (
	"fmt"
	"math"

	"github.com/specialistvlad/coursegridgo/internal/course"
	"github.com/specialistvlad/coursegridgo/internal/geom"
)

// Document is the top-level exported value.
type Document struct {
	Courses []Course `yaml:"courses" json:"courses"`
}

// Course is the exported path of one vehicle.
type Course struct {
	Field         string     `yaml:"field" json:"field"`
	Vehicles      int        `yaml:"vehicles" json:"vehicles"`
	Position      int        `yaml:"position" json:"position"`
	HeadlandIndex int        `yaml:"headland_index" json:"headland_index"`
	Headlands     int        `yaml:"headlands" json:"headlands"`
	Rings         []int      `yaml:"rings,flow" json:"rings"`
	HeadlandFirst bool       `yaml:"headland_first" json:"headland_first"`
	Length        float64    `yaml:"length" json:"length"`
	Waypoints     []Waypoint `yaml:"waypoints" json:"waypoints"`
}

// Waypoint is one exported point. Heading is in degrees.
type Waypoint struct {
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	Section  string  `yaml:"section" json:"section"`
	Number   int     `yaml:"number" json:"number"`
	Detour   bool    `yaml:"detour,omitempty" json:"detour,omitempty"`
	Heading  float64 `yaml:"heading" json:"heading"`
	Distance float64 `yaml:"distance" json:"distance"`
}

// NewCourse exports the path of the vehicle m was configured for.
func NewCourse(field string, m *course.MultiVehicleCourse) (Course, error) {
	s := m.Settings()
	rings, err := m.HeadlandRings(s.Position)
	if err != nil {
		return Course{}, fmt.Errorf("exporting course: %w", err)
	}
	path := m.Path()
	c := Course{
		Field:         field,
		Vehicles:      s.Vehicles,
		Position:      s.Position,
		HeadlandIndex: s.HeadlandIndex(),
		Headlands:     s.Headlands,
		Rings:         rings,
		HeadlandFirst: s.HeadlandFirst,
		Length:        round(path.Length()),
		Waypoints:     make([]Waypoint, 0, path.Len()),
	}
	for _, wp := range path.Waypoints {
		c.Waypoints = append(c.Waypoints, newWaypoint(wp))
	}
	return c, nil
}

func newWaypoint(wp geom.Waypoint) Waypoint {
	return Waypoint{
		X:        round(wp.Point.X),
		Y:        round(wp.Point.Y),
		Section:  wp.Section.String(),
		Number:   wp.Number,
		Detour:   wp.Detour,
		Heading:  round(wp.Heading * 180 / math.Pi),
		Distance: round(wp.Distance),
	}
}

// round keeps millimetres.
func round(v float64) float64 {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		return 0 // no negative zero in the output
	}
	return r
}
