// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
)

// translateField converts the HCL field block into the agnostic model.
func (l *Loader) translateField(ctx context.Context, b *fieldBlock, file string) (*config.Field, error) {
	logger := ctxlog.FromContext(ctx)

	boundary, err := decodePoints(b.Boundary, l.evalCtx)
	if err != nil {
		return nil, fmt.Errorf("field %q in %s: boundary: %w", b.Name, file, err)
	}
	if len(boundary) < 3 {
		return nil, fmt.Errorf("field %q in %s: boundary needs at least 3 points, got %d", b.Name, file, len(boundary))
	}

	f := &config.Field{Name: b.Name, Boundary: boundary, FilePath: file}
	for _, ib := range b.Islands {
		outline, err := decodePoints(ib.Outline, l.evalCtx)
		if err != nil {
			return nil, fmt.Errorf("island %q of field %q in %s: outline: %w", ib.Name, b.Name, file, err)
		}
		if len(outline) < 3 {
			return nil, fmt.Errorf("island %q of field %q in %s: outline needs at least 3 points, got %d", ib.Name, b.Name, file, len(outline))
		}
		f.Islands = append(f.Islands, &config.Island{Name: ib.Name, Outline: outline})
	}
	logger.Debug("Field translated.", "field", f.Name, "vertices", len(f.Boundary), "islands", len(f.Islands))
	return f, nil
}

// translateGroup converts the HCL vehicle_group block into the agnostic
// model, filling in the defaults that do not depend on a field.
func (l *Loader) translateGroup(b *groupBlock, file string) (*config.Group, error) {
	start, err := decodePoint(b.Start, l.evalCtx)
	if err != nil {
		return nil, fmt.Errorf("vehicle_group in %s: start: %w", file, err)
	}
	g := &config.Group{
		Vehicles:      b.Vehicles,
		Headlands:     b.Headlands,
		WorkingWidth:  b.WorkingWidth,
		Position:      b.Position,
		HeadlandFirst: true,
		BypassIslands: b.BypassIslands,
		TurningRadius: b.TurningRadius,
		Start:         start,
		RowAngle:      b.RowAngle,
		Clockwise:     b.Clockwise,
		BigIslandSize: b.BigIslandSize,
		FilePath:      file,
	}
	if b.HeadlandFirst != nil {
		g.HeadlandFirst = *b.HeadlandFirst
	}
	if g.TurningRadius == 0 {
		g.TurningRadius = g.WorkingWidth
	}
	return g, nil
}
