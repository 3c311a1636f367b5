// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package geom

import (
	"log/slog"

	"github.com/golang/geo/r2"
)

// Section tells which part of the course a waypoint belongs to.
type Section int

const (
	SectionHeadland Section = iota + 1
	SectionCenter
	SectionIsland
)

func (s Section) String() string {
	switch s {
	case SectionHeadland:
		return "headland"
	case SectionCenter:
		return "center"
	case SectionIsland:
		return "island"
	default:
		return "unknown"
	}
}

// Waypoint is a single point of a path with its navigation metadata.
type Waypoint struct {
	Point   r2.Point
	Section Section
	// Number is the headland ring number or the center row number.
	Number int
	// Detour marks waypoints inserted to drive around an island.
	Detour bool

	// Heading and Distance are filled in by Path.CalculateProperties.
	Heading  float64 // radians, towards the next waypoint
	Distance float64 // metres from the start of the path
}

// Path is an ordered list of waypoints.
type Path struct {
	Waypoints []Waypoint

	calculated bool
}

// NewPath creates a path from the given waypoints.
func NewPath(wps ...Waypoint) *Path {
	return &Path{Waypoints: append([]Waypoint(nil), wps...)}
}

// PathFromPoints creates a path whose waypoints all share section and number.
func PathFromPoints(section Section, number int, pts ...r2.Point) *Path {
	p := &Path{Waypoints: make([]Waypoint, 0, len(pts))}
	for _, pt := range pts {
		p.Waypoints = append(p.Waypoints, Waypoint{Point: pt, Section: section, Number: number})
	}
	return p
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Waypoints)
}

// Start returns the first point, or the zero point for an empty path.
func (p *Path) Start() r2.Point {
	if p.Len() == 0 {
		return r2.Point{}
	}
	return p.Waypoints[0].Point
}

// End returns the last point, or the zero point for an empty path.
func (p *Path) End() r2.Point {
	if p.Len() == 0 {
		return r2.Point{}
	}
	return p.Waypoints[len(p.Waypoints)-1].Point
}

// Points returns the coordinates of every waypoint.
func (p *Path) Points() []r2.Point {
	pts := make([]r2.Point, 0, p.Len())
	for _, wp := range p.Waypoints {
		pts = append(pts, wp.Point)
	}
	return pts
}

// Append adds waypoints, dropping any that would repeat the current end point.
func (p *Path) Append(wps ...Waypoint) {
	for _, wp := range wps {
		if p.Len() > 0 && Equal(p.End(), wp.Point) {
			continue
		}
		p.Waypoints = append(p.Waypoints, wp)
	}
	p.calculated = false
}

// AppendPath copies the waypoints of other onto the end of p. other is not
// modified.
func (p *Path) AppendPath(other *Path) {
	if other == nil {
		return
	}
	p.Append(other.Waypoints...)
}

// Clone returns a deep copy.
func (p *Path) Clone() *Path {
	c := NewPath(p.Waypoints...)
	c.calculated = p.calculated
	return c
}

// Length returns the driven distance along the path.
func (p *Path) Length() float64 {
	return PolylineLength(p.Points())
}

// CalculateProperties fills in the cumulative distance and heading of every
// waypoint. The last waypoint keeps the heading of the one before it.
func (p *Path) CalculateProperties() {
	var dist float64
	for i := range p.Waypoints {
		if i > 0 {
			dist += Distance(p.Waypoints[i-1].Point, p.Waypoints[i].Point)
		}
		p.Waypoints[i].Distance = dist
		switch {
		case i < len(p.Waypoints)-1:
			p.Waypoints[i].Heading = Heading(p.Waypoints[i].Point, p.Waypoints[i+1].Point)
		case i > 0:
			p.Waypoints[i].Heading = p.Waypoints[i-1].Heading
		}
	}
	p.calculated = true
}

// PropertiesCalculated reports whether CalculateProperties ran since the
// last modification.
func (p *Path) PropertiesCalculated() bool {
	return p.calculated
}

// LogValue implements slog.LogValuer.
func (p *Path) LogValue() slog.Value {
	if p.Len() == 0 {
		return slog.GroupValue(slog.Int("waypoints", 0))
	}
	return slog.GroupValue(
		slog.Int("waypoints", p.Len()),
		slog.Float64("length", p.Length()),
		slog.String("start", p.Start().String()),
		slog.String("end", p.End().String()),
	)
}
