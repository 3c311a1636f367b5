// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package headland

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
)

// ErrNoRings is returned when a connector is asked to join nothing.
var ErrNoRings = errors.New("no headland rings to connect")

// Connector joins rings into one continuous path. Each ring is driven once
// around, starting at the point nearest the vehicle, and left a turning
// radius before it closes so the vehicle can cut across to the next ring.
type Connector struct {
	// Clockwise drives the rings clockwise instead of counter-clockwise.
	Clockwise bool
}

// ConnectFromOutside drives rings in the given order (outermost first),
// starting near start.
func (c *Connector) ConnectFromOutside(ctx context.Context, rings []*Ring, start r2.Point, width, turningRadius float64) (*geom.Path, error) {
	return c.connect(ctx, rings, start, width, turningRadius)
}

// ConnectFromInside drives rings in reverse order, innermost first, starting
// near start, which is normally where the center rows ended.
func (c *Connector) ConnectFromInside(ctx context.Context, rings []*Ring, start r2.Point, width, turningRadius float64) (*geom.Path, error) {
	reversed := make([]*Ring, len(rings))
	for i, r := range rings {
		reversed[len(rings)-1-i] = r
	}
	return c.connect(ctx, reversed, start, width, turningRadius)
}

func (c *Connector) connect(ctx context.Context, rings []*Ring, start r2.Point, width, turningRadius float64) (*geom.Path, error) {
	logger := ctxlog.FromContext(ctx)
	if len(rings) == 0 {
		return nil, ErrNoRings
	}
	if width <= 0 {
		return nil, fmt.Errorf("headland width must be positive, got %v", width)
	}

	path := geom.NewPath()
	current := start
	for i, ring := range rings {
		poly := ring.Polygon.CounterClockwise()
		if c.Clockwise {
			poly = poly.Reversed()
		}
		entry, edge := poly.Nearest(current)
		if i > 0 {
			// Enter the next ring one width ahead so the change of ring is a
			// diagonal rather than a right angle.
			entry, edge = poly.Advance(edge, entry, math.Min(width, poly.Perimeter()/4))
		}
		walk := poly.Walk(edge, entry)
		if i < len(rings)-1 {
			walk = geom.TrimEnd(walk, math.Min(turningRadius, poly.Perimeter()/4))
		}
		for _, pt := range walk {
			path.Append(geom.Waypoint{Point: pt, Section: geom.SectionHeadland, Number: ring.Number})
		}
		current = walk[len(walk)-1]
	}

	logger.Debug("Headland rings connected.", "rings", Numbers(rings), "path", path)
	return path, nil
}
