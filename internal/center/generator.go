// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package center lays out the interior rows of a field: parallel up-and-down
// lanes, one row width apart, that cover whatever the headlands left.
package center

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
)

// ErrNoRows is returned when not a single row fits into the boundary.
var ErrNoRows = errors.New("no center rows fit into the boundary")

// Generator creates the boustrophedon row pattern. Each row spans the full
// extent of the boundary along the row direction.
type Generator struct{}

// NewGenerator creates a center generator.
func NewGenerator() *Generator {
	return &Generator{}
}

type row struct {
	y, x0, x1 float64
}

// Generate lays rows of width rowWidth at angle radians over boundary. When
// start is given, the rows begin in the corner nearest to it; otherwise
// they begin at the low end of the first row. It returns the path and the
// point where it ends.
func (g *Generator) Generate(ctx context.Context, boundary geom.Polygon, rowWidth, angle float64, start *r2.Point) (*geom.Path, r2.Point, error) {
	logger := ctxlog.FromContext(ctx)
	if rowWidth <= 0 {
		return nil, r2.Point{}, fmt.Errorf("row width must be positive, got %v", rowWidth)
	}
	if len(boundary) < 3 {
		return nil, r2.Point{}, fmt.Errorf("%w: %w", ErrNoRows, geom.ErrDegenerate)
	}

	// Rotate the boundary so the rows run along the X axis.
	rotated := boundary.Rotate(-angle)
	rows := layoutRows(rotated, rowWidth)
	if len(rows) == 0 {
		return nil, r2.Point{}, ErrNoRows
	}

	var origin *r2.Point
	if start != nil {
		s := geom.Rotate(*start, -angle)
		origin = &s
	}
	pts := bestVariant(rows, origin)

	path := geom.NewPath()
	for i, pt := range pts {
		path.Append(geom.Waypoint{
			Point:   geom.Rotate(pt, angle),
			Section: geom.SectionCenter,
			Number:  i/2 + 1,
		})
	}
	logger.Debug("Center rows generated.", "rows", len(rows), "row_width", rowWidth, "path", path)
	return path, path.End(), nil
}

// layoutRows places rows bottom to top, the first one half a width above the
// lowest point.
func layoutRows(p geom.Polygon, w float64) []row {
	b := p.Bounds()
	height := b.Y.Length()
	count := int(math.Floor(height/w + geom.Epsilon))
	first := b.Y.Lo + w/2
	if count == 0 && height > geom.Epsilon {
		count = 1
		first = b.Y.Lo + height/2
	}

	var rows []row
	for k := 0; k < count; k++ {
		y := first + float64(k)*w
		xs := p.ScanLine(y)
		if len(xs) < 2 {
			continue
		}
		rows = append(rows, row{y: y, x0: xs[0], x1: xs[len(xs)-1]})
	}
	return rows
}

// bestVariant returns the row sequence whose first point is nearest to
// origin. The four variants start at either end of the first or last row.
func bestVariant(rows []row, origin *r2.Point) []r2.Point {
	best := serpentine(rows, false, false)
	if origin == nil {
		return best
	}
	bestD := geom.Distance(*origin, best[0])
	for _, v := range [][2]bool{{false, true}, {true, false}, {true, true}} {
		pts := serpentine(rows, v[0], v[1])
		if d := geom.Distance(*origin, pts[0]); d < bestD-geom.Epsilon {
			best, bestD = pts, d
		}
	}
	return best
}

func serpentine(rows []row, topFirst, rightFirst bool) []r2.Point {
	pts := make([]r2.Point, 0, 2*len(rows))
	for i := range rows {
		r := rows[i]
		if topFirst {
			r = rows[len(rows)-1-i]
		}
		leftToRight := (i%2 == 0) != rightFirst
		if leftToRight {
			pts = append(pts, r2.Point{X: r.x0, Y: r.y}, r2.Point{X: r.x1, Y: r.y})
		} else {
			pts = append(pts, r2.Point{X: r.x1, Y: r.y}, r2.Point{X: r.x0, Y: r.y})
		}
	}
	return pts
}
