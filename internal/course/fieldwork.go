// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/golang/geo/r2"
	"github.com/specialistvlad/coursegridgo/internal/geom"
)

// fieldwork is the part of a course that does not depend on the group: the
// center rows and their island handling.
type fieldwork struct {
	settings Settings
	logger   *slog.Logger
	center   CenterGenerator
	islands  IslandRouter

	centerPath *geom.Path
	centerEnd  r2.Point
}

// generateCenter lays the rows at the group's row width inside boundary.
func (f *fieldwork) generateCenter(ctx context.Context, boundary geom.Polygon, start *r2.Point) error {
	path, end, err := f.center.Generate(ctx, boundary, f.settings.RowWidth(), f.settings.RowAngle, start)
	if err != nil {
		return fmt.Errorf("generating center: %w", err)
	}
	if path.Len() == 0 {
		return fmt.Errorf("generating center: empty path")
	}
	f.centerPath, f.centerEnd = path, end
	f.logger.Debug("Center generated.", "row_width", f.settings.RowWidth(), "path", path)
	return nil
}

// bypassIslandsInCenter drives the center around small islands first, then
// around and once about each big island.
func (f *fieldwork) bypassIslandsInCenter(ctx context.Context) {
	f.centerPath = f.islands.BypassSmallIslands(ctx, f.centerPath)
	f.centerPath = f.islands.CircleBigIslands(ctx, f.centerPath)
	f.centerEnd = f.centerPath.End()
	f.logger.Debug("Center routed around islands.", "path", f.centerPath)
}

// CenterPath returns the shared center path.
func (f *fieldwork) CenterPath() *geom.Path {
	return f.centerPath
}

// Settings returns the settings the course was generated with, including
// the adjusted headland count.
func (f *fieldwork) Settings() Settings {
	return f.settings
}
