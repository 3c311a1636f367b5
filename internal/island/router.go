// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package island reroutes paths around obstacles inside a field. Islands are
// split by size: small ones are simply driven around, big ones also get
// their own pass around the outline so the ground next to them is worked.
package island

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/specialistvlad/coursegridgo/internal/headland"
)

// Island is an obstacle inside the field.
type Island struct {
	Name    string
	Outline geom.Polygon
}

// obstacle is an island together with the outline vehicles drive along,
// which is the island grown by half a working width.
type obstacle struct {
	Island
	drive geom.Polygon
	big   bool
}

// Router reroutes rings and paths around islands.
type Router struct {
	field     geom.Polygon
	obstacles []obstacle
}

// NewRouter prepares the islands for routing. An island is big when its
// bounding box is at least bigSize long on either side. Detours stay inside
// field where one side allows it; a nil field does not constrain them.
func NewRouter(field geom.Polygon, width, bigSize float64, islands ...Island) (*Router, error) {
	r := &Router{field: field}
	for _, isl := range islands {
		drive, err := isl.Outline.CounterClockwise().Offset(-width / 2)
		if err != nil {
			return nil, fmt.Errorf("island %q: %w", isl.Name, err)
		}
		b := isl.Outline.Bounds()
		r.obstacles = append(r.obstacles, obstacle{
			Island: isl,
			drive:  drive,
			big:    math.Max(b.X.Length(), b.Y.Length()) >= bigSize,
		})
	}
	return r, nil
}

// Big returns the names of the islands classified as big.
func (r *Router) Big() []string {
	return r.names(true)
}

// Small returns the names of the islands classified as small.
func (r *Router) Small() []string {
	return r.names(false)
}

func (r *Router) names(big bool) []string {
	var out []string
	for _, o := range r.obstacles {
		if o.big == big {
			out = append(out, o.Name)
		}
	}
	return out
}

// RouteRingsAroundBigIslands returns copies of rings whose outlines go
// around every big island they cross. Ring numbers are kept.
func (r *Router) RouteRingsAroundBigIslands(ctx context.Context, rings []*headland.Ring) ([]*headland.Ring, error) {
	logger := ctxlog.FromContext(ctx)
	out := make([]*headland.Ring, len(rings))
	for i, ring := range rings {
		pts := append([]r2.Point(nil), ring.Polygon...)
		pts = append(pts, ring.Polygon[0])
		wps := geom.PathFromPoints(geom.SectionHeadland, ring.Number, pts...).Waypoints
		for _, o := range r.obstacles {
			if !o.big {
				continue
			}
			var ok bool
			if wps, ok = startOutside(wps, o.drive); !ok {
				logger.Warn("Headland ring lies inside big island, left as is.", "ring", ring.Number, "island", o.Name)
				continue
			}
			var n int
			wps, n = detour(wps, o.drive, r.field, false)
			if n > 0 {
				logger.Debug("Headland ring routed around big island.", "ring", ring.Number, "island", o.Name)
			}
		}
		routed := make([]r2.Point, 0, len(wps))
		for _, wp := range wps[:len(wps)-1] {
			routed = append(routed, wp.Point)
		}
		poly, err := geom.NewPolygon(routed...)
		if err != nil {
			return nil, fmt.Errorf("routing %s around islands: %w", ring, err)
		}
		out[i] = &headland.Ring{Number: ring.Number, Polygon: poly}
	}
	return out, nil
}

// BypassSmallIslands returns a copy of path that drives around every small
// island it crosses.
func (r *Router) BypassSmallIslands(ctx context.Context, path *geom.Path) *geom.Path {
	return r.route(ctx, path, false, false)
}

// CircleBigIslands returns a copy of path that, on first reaching a big
// island, drives once around it and then continues on the far side.
func (r *Router) CircleBigIslands(ctx context.Context, path *geom.Path) *geom.Path {
	return r.route(ctx, path, true, true)
}

func (r *Router) route(ctx context.Context, path *geom.Path, big, circle bool) *geom.Path {
	logger := ctxlog.FromContext(ctx)
	wps := append([]geom.Waypoint(nil), path.Waypoints...)
	for _, o := range r.obstacles {
		if o.big != big {
			continue
		}
		var n int
		wps, n = detour(wps, o.drive, r.field, circle)
		if n > 0 {
			logger.Debug("Path routed around island.", "island", o.Name, "big", o.big, "crossings", n)
		}
	}
	routed := geom.NewPath()
	routed.Append(wps...)
	return routed
}

// startOutside rotates the closed waypoint ring wps so that it starts at a
// vertex outside outline. It reports false when no vertex is outside.
func startOutside(wps []geom.Waypoint, outline geom.Polygon) ([]geom.Waypoint, bool) {
	if !outline.Contains(wps[0].Point) {
		return wps, true
	}
	open := wps[:len(wps)-1]
	for i, wp := range open {
		if outline.Contains(wp.Point) {
			continue
		}
		out := make([]geom.Waypoint, 0, len(wps))
		out = append(out, open[i:]...)
		out = append(out, open[:i]...)
		return append(out, wp), true
	}
	return wps, false
}

type crossing struct {
	seg   int // path segment index
	t     float64
	edge  int // outline edge index
	point r2.Point
}

func crossings(wps []geom.Waypoint, outline geom.Polygon) []crossing {
	var cs []crossing
	for i := 0; i+1 < len(wps); i++ {
		a, b := wps[i].Point, wps[i+1].Point
		for e := range outline {
			c, d := outline.Edge(e)
			if p, t, _, ok := geom.SegmentIntersection(a, b, c, d); ok {
				cs = append(cs, crossing{seg: i, t: t, edge: e, point: p})
			}
		}
	}
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].seg != cs[j].seg {
			return cs[i].seg < cs[j].seg
		}
		return cs[i].t < cs[j].t
	})

	// A path through a vertex of the outline hits both adjacent edges, and
	// a path through a path vertex on the outline is found on both segments.
	out := cs[:0]
	for _, c := range cs {
		if len(out) > 0 && geom.Equal(out[len(out)-1].point, c.point) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// detour replaces every stretch of wps inside outline with the shorter way
// around it that stays in field. With circle set, the first entry also gets
// a full lap around the outline. It returns the new waypoints and how many
// stretches changed.
func detour(wps []geom.Waypoint, outline, field geom.Polygon, circle bool) ([]geom.Waypoint, int) {
	cs := crossings(wps, outline)
	if len(wps) > 0 && outline.Contains(wps[0].Point) && len(cs) > 0 {
		cs = cs[1:]
	}
	if len(cs) < 2 {
		return wps, 0
	}

	out := make([]geom.Waypoint, 0, len(wps)+len(outline)*2)
	next, n := 0, 0
	for k := 0; k+1 < len(cs); k += 2 {
		in, exit := cs[k], cs[k+1]
		for ; next <= in.seg; next++ {
			out = append(out, wps[next])
		}
		tmpl := wps[in.seg]
		tmpl.Detour = true
		out = append(out, at(tmpl, in.point))
		if circle && n == 0 {
			lap := tmpl
			lap.Section = geom.SectionIsland
			for _, p := range outline.Walk(in.edge, in.point)[1:] {
				out = append(out, at(lap, p))
			}
		}
		for _, p := range around(outline, field, in.edge, exit.edge, in.point, exit.point) {
			out = append(out, at(tmpl, p))
		}
		out = append(out, at(tmpl, exit.point))
		next = exit.seg + 1
		n++
	}
	for ; next < len(wps); next++ {
		out = append(out, wps[next])
	}
	return out, n
}

func at(tmpl geom.Waypoint, p r2.Point) geom.Waypoint {
	tmpl.Point = p
	return tmpl
}

// around returns the outline vertices between entry (on edge ei) and exit
// (on edge xi). A way that leaves field loses to one that does not;
// otherwise the shorter way wins.
func around(outline, field geom.Polygon, ei, xi int, entry, exit r2.Point) []r2.Point {
	if ei == xi {
		return nil
	}
	m := len(outline)
	var fwd, bwd []r2.Point
	for k := 1; k <= (xi-ei+m)%m; k++ {
		fwd = append(fwd, outline[(ei+k)%m])
	}
	for k := 0; k < (ei-xi+m)%m; k++ {
		bwd = append(bwd, outline[(ei-k+m)%m])
	}
	if fin, bin := within(field, fwd), within(field, bwd); fin != bin {
		if fin {
			return fwd
		}
		return bwd
	}
	if tourLength(entry, fwd, exit) <= tourLength(entry, bwd, exit) {
		return fwd
	}
	return bwd
}

func within(field geom.Polygon, pts []r2.Point) bool {
	if field == nil {
		return true
	}
	for _, p := range pts {
		if !field.Covers(p) {
			return false
		}
	}
	return true
}

func tourLength(from r2.Point, via []r2.Point, to r2.Point) float64 {
	pts := append([]r2.Point{from}, via...)
	return geom.PolylineLength(append(pts, to))
}
