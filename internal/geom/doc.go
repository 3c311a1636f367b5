// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package geom holds the low-level geometry shared by every course
// generator: planar points (r2.Point from github.com/golang/geo), closed
// polygons used for field boundaries, headland rings and island outlines,
// and the waypoint paths a vehicle drives.
//
// Coordinates are metres in a local, flat frame. Polygons are stored without
// repeating the first vertex; orientation matters for offsetting and for the
// direction headland rings are driven, so most constructors normalize to
// counter-clockwise.
package geom
