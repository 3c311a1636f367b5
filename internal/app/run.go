// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/specialistvlad/coursegridgo/internal/config"
	"github.com/specialistvlad/coursegridgo/internal/course"
	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/export"
	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/specialistvlad/coursegridgo/internal/island"
)

// ErrNoGroup is returned when the configuration has no vehicle_group.
var ErrNoGroup = errors.New("no vehicle_group defined")

// Run generates the configured courses and writes them out.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	field, err := a.model.Field(a.config.Field)
	if err != nil {
		return err
	}
	group := a.model.Group
	if group == nil {
		return ErrNoGroup
	}
	ctx = ctxlog.With(ctx, "field", field.Name)

	boundary, err := geom.NewPolygon(field.Boundary...)
	if err != nil {
		return fmt.Errorf("field %q: boundary: %w", field.Name, err)
	}
	islands, err := fieldIslands(field)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Field prepared.", "area", boundary.Area(), "centroid", boundary.Centroid(), "islands", len(islands))

	positions := []int{group.Position}
	switch {
	case a.config.All:
		positions = course.ValidPositions(group.Vehicles)
	case a.config.Position != nil:
		positions = []int{*a.config.Position}
	}

	courses := make([]export.Course, 0, len(positions))
	for _, pos := range positions {
		c, err := a.generate(ctx, field, group, boundary, islands, pos)
		if err != nil {
			return fmt.Errorf("field %q, position %d: %w", field.Name, pos, err)
		}
		courses = append(courses, c)
	}

	if err := a.write(courses); err != nil {
		return err
	}
	a.logger.Info("🏁 Courses written.", "field", field.Name, "courses", len(courses), "output", a.outputName())
	return nil
}

func (a *App) generate(ctx context.Context, field *config.Field, g *config.Group, boundary geom.Polygon, islands []island.Island, position int) (export.Course, error) {
	s, err := a.settings(field, g, position)
	if err != nil {
		return export.Course{}, err
	}
	collabs, err := course.DefaultCollaborators(boundary, islands, s)
	if err != nil {
		return export.Course{}, err
	}
	if r, ok := collabs.Islands.(*island.Router); ok {
		ctxlog.FromContext(ctx).Debug("Islands classified.", "position", position, "big", r.Big(), "small", r.Small())
	}
	m, err := course.New(ctx, s, collabs)
	if err != nil {
		return export.Course{}, err
	}
	return export.NewCourse(field.Name, m)
}

// settings maps the group onto course settings for one position.
func (a *App) settings(field *config.Field, g *config.Group, position int) (course.Settings, error) {
	start := field.Boundary[0]
	if g.Start != nil {
		start = *g.Start
	}
	turningRadius := g.TurningRadius
	if turningRadius == 0 {
		turningRadius = g.WorkingWidth
	}
	return course.NewBuilder().
		SetVehicles(g.Vehicles).
		SetHeadlands(g.Headlands).
		SetWorkingWidth(g.WorkingWidth).
		SetPosition(position).
		SetHeadlandFirst(g.HeadlandFirst).
		SetBypassIslands(g.BypassIslands).
		SetStartLocation(start).
		SetTurningRadius(turningRadius).
		SetRowAngle(g.RowAngle * math.Pi / 180).
		SetClockwise(g.Clockwise).
		SetBigIslandSize(g.BigIslandSize).
		SetParallel(a.config.Parallel).
		Build()
}

func fieldIslands(field *config.Field) ([]island.Island, error) {
	out := make([]island.Island, 0, len(field.Islands))
	for _, isl := range field.Islands {
		outline, err := geom.NewPolygon(isl.Outline...)
		if err != nil {
			return nil, fmt.Errorf("field %q: island %q: %w", field.Name, isl.Name, err)
		}
		out = append(out, island.Island{Name: isl.Name, Outline: outline})
	}
	return out, nil
}

func (a *App) write(courses []export.Course) (err error) {
	if a.config.OutputPath == "" {
		return export.Write(a.outW, a.config.Format, courses)
	}
	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()
	return export.Write(f, a.config.Format, courses)
}

func (a *App) outputName() string {
	if a.config.OutputPath == "" {
		return "stdout"
	}
	return a.config.OutputPath
}
