// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon is the tolerance used when comparing coordinates.
const Epsilon = 1e-9

// Pt is shorthand for r2.Point{X: x, Y: y}.
func Pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// Heading returns the direction from a to b in radians, measured
// counter-clockwise from the positive X axis.
func Heading(a, b r2.Point) float64 {
	d := b.Sub(a)
	return math.Atan2(d.Y, d.X)
}

// Lerp returns the point at fraction t along the segment a-b.
func Lerp(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// Rotate rotates p around the origin by angle radians.
func Rotate(p r2.Point, angle float64) r2.Point {
	sin, cos := math.Sincos(angle)
	return r2.Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Equal reports whether a and b coincide within Epsilon.
func Equal(a, b r2.Point) bool {
	return math.Abs(a.X-b.X) <= Epsilon && math.Abs(a.Y-b.Y) <= Epsilon
}

// SegmentIntersection intersects segment a1-a2 with segment b1-b2. t and u
// are the fractions along the first and second segment. Parallel segments
// never intersect.
func SegmentIntersection(a1, a2, b1, b2 r2.Point) (p r2.Point, t, u float64, ok bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	if math.Abs(denom) < Epsilon {
		return r2.Point{}, 0, 0, false
	}
	qp := b1.Sub(a1)
	t = qp.Cross(s) / denom
	u = qp.Cross(r) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return r2.Point{}, 0, 0, false
	}
	return a1.Add(r.Mul(t)), t, u, true
}

// lineIntersection intersects the infinite lines p1+r*t and p2+s*u.
func lineIntersection(p1, r, p2, s r2.Point) (r2.Point, bool) {
	denom := r.Cross(s)
	if math.Abs(denom) < Epsilon {
		return r2.Point{}, false
	}
	t := p2.Sub(p1).Cross(s) / denom
	return p1.Add(r.Mul(t)), true
}

// NearestOnSegment returns the point of segment a-b closest to p and its
// fraction along the segment.
func NearestOnSegment(p, a, b r2.Point) (r2.Point, float64) {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < Epsilon {
		return a, 0
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return a.Add(ab.Mul(t)), t
}

// PolylineLength returns the summed length of consecutive segments.
func PolylineLength(pts []r2.Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += Distance(pts[i-1], pts[i])
	}
	return l
}

// TrimEnd removes d metres from the end of the polyline. The polyline is
// never shortened below its first point.
func TrimEnd(pts []r2.Point, d float64) []r2.Point {
	out := append([]r2.Point(nil), pts...)
	for len(out) >= 2 && d > 0 {
		a, b := out[len(out)-2], out[len(out)-1]
		seg := Distance(a, b)
		if seg > d {
			out[len(out)-1] = Lerp(b, a, d/seg)
			return out
		}
		d -= seg
		out = out[:len(out)-1]
	}
	return out
}
