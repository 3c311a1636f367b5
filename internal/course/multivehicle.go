// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/coursegridgo/internal/ctxlog"
	"github.com/specialistvlad/coursegridgo/internal/geom"
	"github.com/specialistvlad/coursegridgo/internal/headland"
	"golang.org/x/sync/errgroup"
)

// MultiVehicleCourse is the course of one vehicle of a group. The headland
// paths of every vehicle in the group are kept, so HeadlandPath can answer
// for any slot.
type MultiVehicleCourse struct {
	fieldwork

	rings      []*headland.Ring
	partitions [][]*headland.Ring
	// headlandPaths[v-1] is the path of partition v.
	headlandPaths []*geom.Path

	pathOnce sync.Once
	path     *geom.Path
}

// New generates the headlands and the center for the group. The returned
// course is complete except for the joined path of the configured vehicle,
// which Path assembles on first use.
func New(ctx context.Context, s Settings, c Collaborators) (*MultiVehicleCourse, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := c.validate(s); err != nil {
		return nil, err
	}

	ctx = ctxlog.With(ctx, "vehicles", s.Vehicles, "position", s.Position)
	logger := ctxlog.FromContext(ctx)

	if n := NormalizeHeadlandCount(s.Headlands, s.Vehicles); n != s.Headlands {
		logger.Info("Adjusted headland count to a multiple of the group size.", "requested", s.Headlands, "adjusted", n)
		s.Headlands = n
	}

	m := &MultiVehicleCourse{
		fieldwork: fieldwork{
			settings: s,
			logger:   logger,
			center:   c.Center,
			islands:  c.Islands,
		},
	}

	rings, err := c.Rings.Generate(ctx, s.Headlands, s.HeadlandWidth())
	if err != nil {
		return nil, fmt.Errorf("generating headlands: %w", err)
	}
	if len(rings) != s.Headlands {
		return nil, fmt.Errorf("generating headlands: got %d rings, want %d", len(rings), s.Headlands)
	}
	if s.BypassIslands {
		rings, err = c.Islands.RouteRingsAroundBigIslands(ctx, rings)
		if err != nil {
			return nil, fmt.Errorf("routing headlands around big islands: %w", err)
		}
	}
	m.rings = rings
	m.partitions = Partition(rings, s.Vehicles)

	inner, err := c.Rings.InnerBoundary(s.Headlands, s.HeadlandWidth())
	if err != nil {
		return nil, fmt.Errorf("generating headlands: %w", err)
	}

	if s.HeadlandFirst {
		err = m.generateHeadlandsFirst(ctx, c.Connector, inner)
	} else {
		err = m.generateCenterFirst(ctx, c.Connector, inner)
	}
	if err != nil {
		return nil, err
	}

	if s.BypassIslands {
		m.bypassIslandsInCenter(ctx)
	}

	logger.Info("Multi-vehicle course generated.", "settings", s, "headland_index", s.HeadlandIndex())
	return m, nil
}

func (m *MultiVehicleCourse) generateHeadlandsFirst(ctx context.Context, conn HeadlandConnector, inner geom.Polygon) error {
	s := m.settings
	err := m.connectHeadlands(ctx, func(ctx context.Context, rings []*headland.Ring) (*geom.Path, error) {
		return conn.ConnectFromOutside(ctx, rings, s.StartLocation, s.HeadlandWidth(), s.TurningRadius)
	})
	if err != nil {
		return err
	}
	m.routeHeadlandsAroundSmallIslands(ctx)

	// The center continues where the first partition's headland path ends.
	start := m.headlandPaths[0].End()
	return m.generateCenter(ctx, inner, &start)
}

func (m *MultiVehicleCourse) generateCenterFirst(ctx context.Context, conn HeadlandConnector, inner geom.Polygon) error {
	if err := m.generateCenter(ctx, inner, nil); err != nil {
		return err
	}
	s := m.settings
	end := m.centerEnd
	err := m.connectHeadlands(ctx, func(ctx context.Context, rings []*headland.Ring) (*geom.Path, error) {
		return conn.ConnectFromInside(ctx, rings, end, s.HeadlandWidth(), s.TurningRadius)
	})
	if err != nil {
		return err
	}
	m.routeHeadlandsAroundSmallIslands(ctx)
	return nil
}

type connectFunc func(ctx context.Context, rings []*headland.Ring) (*geom.Path, error)

// connectHeadlands builds the headland path of every partition. Each call
// writes only its own slot, so with Parallel set the partitions are
// connected concurrently; logging happens afterwards in partition order.
func (m *MultiVehicleCourse) connectHeadlands(ctx context.Context, connect connectFunc) error {
	paths := make([]*geom.Path, len(m.partitions))
	one := func(ctx context.Context, v int) error {
		p, err := connect(ctx, m.partitions[v])
		if err != nil {
			return fmt.Errorf("connecting headlands of vehicle %d: %w", v+1, err)
		}
		if p.Len() == 0 {
			return fmt.Errorf("connecting headlands of vehicle %d: empty path", v+1)
		}
		paths[v] = p
		return nil
	}

	if m.settings.Parallel {
		g, gctx := errgroup.WithContext(ctx)
		for v := range m.partitions {
			v := v
			g.Go(func() error { return one(gctx, v) })
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for v := range m.partitions {
			if err := one(ctx, v); err != nil {
				return err
			}
		}
	}

	for v, p := range paths {
		m.logger.Debug("Headland path connected.", "vehicle", v+1, "rings", headland.Numbers(m.partitions[v]), "path", p)
	}
	m.headlandPaths = paths
	return nil
}

// routeHeadlandsAroundSmallIslands runs in both orders whenever an island
// router is present. Bypass only controls the ring and center passes.
func (m *MultiVehicleCourse) routeHeadlandsAroundSmallIslands(ctx context.Context) {
	if m.islands == nil {
		return
	}
	for v, p := range m.headlandPaths {
		m.headlandPaths[v] = m.islands.BypassSmallIslands(ctx, p)
	}
}

// HeadlandRings returns the ring numbers driven by the vehicle in position.
func (m *MultiVehicleCourse) HeadlandRings(position int) ([]int, error) {
	if err := ValidatePosition(position, m.settings.Vehicles); err != nil {
		return nil, err
	}
	return headland.Numbers(m.partitions[PositionToHeadlandIndex(position, m.settings.Vehicles)-1]), nil
}

// HeadlandPath returns the headland path of the vehicle in position.
func (m *MultiVehicleCourse) HeadlandPath(position int) (*geom.Path, error) {
	if err := ValidatePosition(position, m.settings.Vehicles); err != nil {
		return nil, err
	}
	return m.headlandPaths[PositionToHeadlandIndex(position, m.settings.Vehicles)-1], nil
}

// PositionToHeadlandIndex maps a slot of this course's group to its
// partition index.
func (m *MultiVehicleCourse) PositionToHeadlandIndex(position int) int {
	return PositionToHeadlandIndex(position, m.settings.Vehicles)
}

// Path returns the complete course of the configured vehicle: its headland
// path and the center, in the configured order, with distances and headings
// calculated. It is built once; later calls return the same *geom.Path.
func (m *MultiVehicleCourse) Path() *geom.Path {
	m.pathOnce.Do(func() {
		headlandPath := m.headlandPaths[m.settings.HeadlandIndex()-1]
		p := geom.NewPath()
		if m.settings.HeadlandFirst {
			p.AppendPath(headlandPath)
			p.AppendPath(m.centerPath)
		} else {
			p.AppendPath(m.centerPath)
			p.AppendPath(headlandPath)
		}
		p.CalculateProperties()
		m.path = p
		m.logger.Debug("Vehicle path assembled.", "headland_index", m.settings.HeadlandIndex(), "path", p)
	})
	return m.path
}
