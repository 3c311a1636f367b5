// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package geom

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// ErrDegenerate is returned when a polygon has fewer than three distinct
// vertices, has no area, or collapses while being offset.
var ErrDegenerate = errors.New("degenerate polygon")

// Polygon is a closed ring of vertices. The first vertex is not repeated at
// the end.
type Polygon []r2.Point

// NewPolygon removes consecutive duplicate vertices (including a repeated
// closing vertex) and checks that the result encloses an area.
func NewPolygon(pts ...r2.Point) (Polygon, error) {
	p := make(Polygon, 0, len(pts))
	for _, pt := range pts {
		if len(p) > 0 && Equal(p[len(p)-1], pt) {
			continue
		}
		p = append(p, pt)
	}
	for len(p) > 1 && Equal(p[0], p[len(p)-1]) {
		p = p[:len(p)-1]
	}
	if len(p) < 3 {
		return nil, fmt.Errorf("%w: %d distinct vertices", ErrDegenerate, len(p))
	}
	if p.Area() < Epsilon {
		return nil, fmt.Errorf("%w: zero area", ErrDegenerate)
	}
	return p, nil
}

// Edge returns the endpoints of edge i, which runs from vertex i to the next.
func (p Polygon) Edge(i int) (r2.Point, r2.Point) {
	return p[i], p[(i+1)%len(p)]
}

// SignedArea is positive for counter-clockwise polygons.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i := range p {
		u, v := p.Edge(i)
		a += u.Cross(v)
	}
	return a / 2
}

// Area returns the enclosed area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsClockwise reports the vertex orientation.
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Reversed returns a copy with the opposite orientation, keeping the first
// vertex in place.
func (p Polygon) Reversed() Polygon {
	out := make(Polygon, len(p))
	for i := range p {
		out[i] = p[(len(p)-i)%len(p)]
	}
	return out
}

// CounterClockwise returns a counter-clockwise copy of p.
func (p Polygon) CounterClockwise() Polygon {
	if p.IsClockwise() {
		return p.Reversed()
	}
	return append(Polygon(nil), p...)
}

// Perimeter returns the length of the closed outline.
func (p Polygon) Perimeter() float64 {
	var l float64
	for i := range p {
		a, b := p.Edge(i)
		l += Distance(a, b)
	}
	return l
}

// Bounds returns the axis aligned bounding rectangle.
func (p Polygon) Bounds() r2.Rect {
	return r2.RectFromPoints(p...)
}

// Centroid returns the area centroid.
func (p Polygon) Centroid() r2.Point {
	var cx, cy float64
	for i := range p {
		a, b := p.Edge(i)
		c := a.Cross(b)
		cx += (a.X + b.X) * c
		cy += (a.Y + b.Y) * c
	}
	f := 1 / (6 * p.SignedArea())
	return r2.Point{X: cx * f, Y: cy * f}
}

// Contains reports whether pt lies inside p (even-odd rule).
func (p Polygon) Contains(pt r2.Point) bool {
	in := false
	for i := range p {
		a, b := p.Edge(i)
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				in = !in
			}
		}
	}
	return in
}

// Covers reports whether pt lies inside p or on its outline.
func (p Polygon) Covers(pt r2.Point) bool {
	if p.Contains(pt) {
		return true
	}
	q, _ := p.Nearest(pt)
	return Distance(pt, q) <= Epsilon
}

// Rotate rotates every vertex around the origin.
func (p Polygon) Rotate(angle float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Rotate(v, angle)
	}
	return out
}

// Nearest returns the point of the outline closest to pt and the edge it
// lies on.
func (p Polygon) Nearest(pt r2.Point) (r2.Point, int) {
	best, bestEdge, bestD := r2.Point{}, 0, math.Inf(1)
	for i := range p {
		a, b := p.Edge(i)
		q, _ := NearestOnSegment(pt, a, b)
		if d := Distance(pt, q); d < bestD {
			best, bestEdge, bestD = q, i, d
		}
	}
	return best, bestEdge
}

// Walk returns the closed tour of the outline that starts and ends at from,
// a point on edge. Vertices are visited in storage order.
func (p Polygon) Walk(edge int, from r2.Point) []r2.Point {
	out := []r2.Point{from}
	for k := 1; k <= len(p); k++ {
		v := p[(edge+k)%len(p)]
		if !Equal(out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	if !Equal(out[len(out)-1], from) {
		out = append(out, from)
	}
	return out
}

// Advance moves d metres along the outline, in storage order, from a point
// on edge. It returns the new point and the edge it lies on.
func (p Polygon) Advance(edge int, from r2.Point, d float64) (r2.Point, int) {
	for k := 0; k <= len(p); k++ {
		_, b := p.Edge(edge)
		rem := Distance(from, b)
		if d <= rem {
			if rem < Epsilon {
				return b, edge
			}
			return Lerp(from, b, d/rem), edge
		}
		d -= rem
		from = b
		edge = (edge + 1) % len(p)
	}
	return from, edge
}

// ScanLine returns the sorted X coordinates where the horizontal line at y
// crosses the outline.
func (p Polygon) ScanLine(y float64) []float64 {
	var xs []float64
	for i := range p {
		a, b := p.Edge(i)
		if (a.Y <= y) != (b.Y <= y) {
			xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
	}
	sort.Float64s(xs)
	return xs
}

// Offset moves every edge by d towards the inside of the polygon; a negative
// d grows it. Vertices are rebuilt as the intersection of neighbouring
// offset edges (mitre joins). The result keeps p's orientation. Offsetting
// fails with ErrDegenerate when an edge flips direction, meaning the polygon
// is too small for the requested distance.
func (p Polygon) Offset(d float64) (Polygon, error) {
	if len(p) < 3 {
		return nil, ErrDegenerate
	}
	cw := p.IsClockwise()
	src := p.CounterClockwise()
	n := len(src)

	origins := make([]r2.Point, n)
	dirs := make([]r2.Point, n)
	for i := range src {
		a, b := src.Edge(i)
		dir := b.Sub(a)
		if dir.Norm() < Epsilon {
			return nil, fmt.Errorf("%w: zero length edge %d", ErrDegenerate, i)
		}
		dir = dir.Normalize()
		dirs[i] = dir
		origins[i] = a.Add(dir.Ortho().Mul(d))
	}

	out := make(Polygon, n)
	for j := range src {
		prev := (j - 1 + n) % n
		v, ok := lineIntersection(origins[prev], dirs[prev], origins[j], dirs[j])
		if !ok {
			v = origins[j]
		}
		out[j] = v
	}

	for i := range out {
		a, b := out.Edge(i)
		if b.Sub(a).Dot(dirs[i]) <= Epsilon {
			return nil, fmt.Errorf("%w: offset by %.2f collapses edge %d", ErrDegenerate, d, i)
		}
	}
	if out.SignedArea() <= Epsilon {
		return nil, fmt.Errorf("%w: offset by %.2f leaves no area", ErrDegenerate, d)
	}
	if cw {
		return out.Reversed(), nil
	}
	return out, nil
}
