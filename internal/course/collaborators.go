// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

import (
	"context"
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/specialistvlad/coursegridgo/internal/center"
	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/specialistvlad/coursegridgo/internal/headland"
	"github.com/specialistvlad/coursegridgo/internal/island"
)

// RingGenerator produces the headland rings of a field, outermost first.
type RingGenerator interface {
	Generate(ctx context.Context, n int, width float64) ([]*headland.Ring, error)
	// InnerBoundary is the area left for the center inside n rings.
	InnerBoundary(n int, width float64) (geom.Polygon, error)
}

// HeadlandConnector joins an ordered set of rings into one path.
type HeadlandConnector interface {
	ConnectFromOutside(ctx context.Context, rings []*headland.Ring, start r2.Point, width, turningRadius float64) (*geom.Path, error)
	ConnectFromInside(ctx context.Context, rings []*headland.Ring, start r2.Point, width, turningRadius float64) (*geom.Path, error)
}

// CenterGenerator lays out the interior rows. start, when not nil, is where
// the rows should begin.
type CenterGenerator interface {
	Generate(ctx context.Context, boundary geom.Polygon, rowWidth, angle float64, start *r2.Point) (*geom.Path, r2.Point, error)
}

// IslandRouter reroutes rings and paths around islands.
type IslandRouter interface {
	RouteRingsAroundBigIslands(ctx context.Context, rings []*headland.Ring) ([]*headland.Ring, error)
	BypassSmallIslands(ctx context.Context, path *geom.Path) *geom.Path
	CircleBigIslands(ctx context.Context, path *geom.Path) *geom.Path
}

// Collaborators are the geometry routines a MultiVehicleCourse drives.
// Islands may be nil when island bypass is off; headland paths are then
// left as connected.
type Collaborators struct {
	Rings     RingGenerator
	Connector HeadlandConnector
	Center    CenterGenerator
	Islands   IslandRouter
}

func (c Collaborators) validate(s Settings) error {
	switch {
	case c.Rings == nil:
		return &ConfigError{Field: "collaborators", Reason: "ring generator is missing"}
	case c.Connector == nil:
		return &ConfigError{Field: "collaborators", Reason: "headland connector is missing"}
	case c.Center == nil:
		return &ConfigError{Field: "collaborators", Reason: "center generator is missing"}
	case s.BypassIslands && c.Islands == nil:
		return &ConfigError{Field: "collaborators", Reason: "island bypass is on but no island router was given"}
	}
	return nil
}

// DefaultCollaborators wires the headland, center and island packages for a
// field. The island router is set up when the field has islands or
// s.BypassIslands is on.
func DefaultCollaborators(boundary geom.Polygon, islands []island.Island, s Settings) (Collaborators, error) {
	rings := headland.NewGenerator(boundary)
	c := Collaborators{
		Rings:     rings,
		Connector: &headland.Connector{Clockwise: s.Clockwise},
		Center:    center.NewGenerator(),
	}
	if s.BypassIslands || len(islands) > 0 {
		bigSize := s.BigIslandSize
		if bigSize == 0 {
			bigSize = 3 * s.WorkingWidth
		}
		r, err := island.NewRouter(rings.Boundary(), s.HeadlandWidth(), bigSize, islands...)
		if err != nil {
			return Collaborators{}, fmt.Errorf("setting up islands: %w", err)
		}
		c.Islands = r
	}
	return c, nil
}
