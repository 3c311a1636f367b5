// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Functions returns the functions available in configuration files.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"rect":   RectFunc,
		"circle": CircleFunc,
	}
}

func numberParams(names ...string) []function.Parameter {
	params := make([]function.Parameter, 0, len(names))
	for _, n := range names {
		params = append(params, function.Parameter{Name: n, Type: cty.Number})
	}
	return params
}

func floats(args []cty.Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		if err := gocty.FromCtyValue(a, &out[i]); err != nil {
			return nil, function.NewArgError(i, err)
		}
	}
	return out, nil
}

// RectFunc builds the axis-aligned rectangle between two opposite corners:
// rect(x0, y0, x1, y1).
var RectFunc = function.New(&function.Spec{
	Params: numberParams("x0", "y0", "x1", "y1"),
	Type:   function.StaticReturnType(pointsType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v, err := floats(args)
		if err != nil {
			return cty.NilVal, err
		}
		x0, y0, x1, y1 := math.Min(v[0], v[2]), math.Min(v[1], v[3]), math.Max(v[0], v[2]), math.Max(v[1], v[3])
		if x0 == x1 || y0 == y1 {
			return cty.NilVal, fmt.Errorf("rectangle (%v, %v)-(%v, %v) has no area", v[0], v[1], v[2], v[3])
		}
		return pointsVal([]r2.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}), nil
	},
})

// CircleFunc approximates a circle by a regular polygon, counter-clockwise
// from the point east of the center: circle(cx, cy, r, segments).
var CircleFunc = function.New(&function.Spec{
	Params: numberParams("cx", "cy", "r", "segments"),
	Type:   function.StaticReturnType(pointsType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v, err := floats(args)
		if err != nil {
			return cty.NilVal, err
		}
		cx, cy, r := v[0], v[1], v[2]
		var n int
		if err := gocty.FromCtyValue(args[3], &n); err != nil {
			return cty.NilVal, function.NewArgError(3, err)
		}
		if r <= 0 {
			return cty.NilVal, function.NewArgErrorf(2, "radius must be positive, got %v", r)
		}
		if n < 3 {
			return cty.NilVal, function.NewArgErrorf(3, "need at least 3 segments, got %d", n)
		}
		pts := make([]r2.Point, n)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = r2.Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
		}
		return pointsVal(pts), nil
	},
})
