// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	pointType  = cty.List(cty.Number)
	pointsType = cty.List(pointType)
)

// decodePoints evaluates expr as a list of [x, y] pairs.
func decodePoints(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]r2.Point, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, fmt.Errorf("value is required")
	}
	val, err := convert.Convert(val, pointsType)
	if err != nil {
		return nil, fmt.Errorf("expected a list of [x, y] pairs: %w", err)
	}
	var raw [][]float64
	if err := gocty.FromCtyValue(val, &raw); err != nil {
		return nil, err
	}
	pts := make([]r2.Point, 0, len(raw))
	for i, xy := range raw {
		p, err := toPoint(xy)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// decodePoint evaluates expr as a single [x, y] pair. A null value, which
// is what an omitted optional attribute evaluates to, yields nil.
func decodePoint(expr hcl.Expression, evalCtx *hcl.EvalContext) (*r2.Point, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	val, err := convert.Convert(val, pointType)
	if err != nil {
		return nil, fmt.Errorf("expected an [x, y] pair: %w", err)
	}
	var xy []float64
	if err := gocty.FromCtyValue(val, &xy); err != nil {
		return nil, err
	}
	p, err := toPoint(xy)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func toPoint(xy []float64) (r2.Point, error) {
	if len(xy) != 2 {
		return r2.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(xy))
	}
	return r2.Point{X: xy[0], Y: xy[1]}, nil
}

// pointsVal is the cty form of pts, as accepted by decodePoints.
func pointsVal(pts []r2.Point) cty.Value {
	vals := make([]cty.Value, 0, len(pts))
	for _, p := range pts {
		vals = append(vals, cty.ListVal([]cty.Value{cty.NumberFloatVal(p.X), cty.NumberFloatVal(p.Y)}))
	}
	return cty.ListVal(vals)
}
