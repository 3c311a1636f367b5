// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Fields []*fieldBlock `hcl:"field,block"`
	Groups []*groupBlock `hcl:"vehicle_group,block"`
}

type fieldBlock struct {
	Name     string         `hcl:"name,label"`
	Boundary hcl.Expression `hcl:"boundary"`
	Islands  []*islandBlock `hcl:"island,block"`
}

type islandBlock struct {
	Name    string         `hcl:"name,label"`
	Outline hcl.Expression `hcl:"outline"`
}

type groupBlock struct {
	Vehicles      int            `hcl:"vehicles"`
	Headlands     int            `hcl:"headlands,optional"`
	WorkingWidth  float64        `hcl:"working_width"`
	Position      int            `hcl:"position,optional"`
	HeadlandFirst *bool          `hcl:"headland_first,optional"`
	BypassIslands bool           `hcl:"bypass_islands,optional"`
	TurningRadius float64        `hcl:"turning_radius,optional"`
	Start         hcl.Expression `hcl:"start,optional"`
	RowAngle      float64        `hcl:"row_angle,optional"`
	Clockwise     bool           `hcl:"clockwise,optional"`
	BigIslandSize float64        `hcl:"big_island_size,optional"`
}
