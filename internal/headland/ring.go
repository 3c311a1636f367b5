// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package headland

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
)

// ErrFieldTooSmall is returned when the requested rings do not fit inside
// the field boundary.
var ErrFieldTooSmall = errors.New("field too small for the requested headlands")

// Ring is one closed headland pass. Polygon is the centre line the vehicle
// drives.
type Ring struct {
	Number  int
	Polygon geom.Polygon
}

func (r *Ring) String() string {
	return fmt.Sprintf("headland ring %d", r.Number)
}

// Numbers lists the ring numbers of rings, in order.
func Numbers(rings []*Ring) []int {
	out := make([]int, len(rings))
	for i, r := range rings {
		out[i] = r.Number
	}
	return out
}

// Generator produces headland rings for one field boundary.
type Generator struct {
	boundary geom.Polygon
}

// NewGenerator creates a generator for the boundary. The boundary is stored
// counter-clockwise.
func NewGenerator(boundary geom.Polygon) *Generator {
	return &Generator{boundary: boundary.CounterClockwise()}
}

// Boundary returns the counter-clockwise field boundary.
func (g *Generator) Boundary() geom.Polygon {
	return g.boundary
}

// Generate returns n rings, outermost first. Ring i is centred width*(i-0.5)
// inside the boundary.
func (g *Generator) Generate(ctx context.Context, n int, width float64) ([]*Ring, error) {
	logger := ctxlog.FromContext(ctx)
	if width <= 0 {
		return nil, fmt.Errorf("headland width must be positive, got %v", width)
	}

	rings := make([]*Ring, 0, n)
	for i := 1; i <= n; i++ {
		poly, err := g.boundary.Offset(width * (float64(i) - 0.5))
		if err != nil {
			return nil, fmt.Errorf("%w: ring %d of %d: %w", ErrFieldTooSmall, i, n, err)
		}
		rings = append(rings, &Ring{Number: i, Polygon: poly})
	}
	logger.Debug("Headland rings generated.", "count", len(rings), "width", width)
	return rings, nil
}

// InnerBoundary returns the area left inside n rings of the given width,
// which is where the center rows go.
func (g *Generator) InnerBoundary(n int, width float64) (geom.Polygon, error) {
	if n == 0 {
		return append(geom.Polygon(nil), g.boundary...), nil
	}
	poly, err := g.boundary.Offset(width * float64(n))
	if err != nil {
		return nil, fmt.Errorf("%w: no center left inside %d headlands: %w", ErrFieldTooSmall, n, err)
	}
	return poly, nil
}
