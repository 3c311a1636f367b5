// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package course generates the course of one vehicle working a field as part
// of a group.
//
// # Layout
//
// The interior ("center") rows are laid out once, at the combined width of
// the whole group, so the row pattern is the same no matter how many
// vehicles drive it. Headland rings are generated at single-vehicle width
// and dealt out round-robin: vehicle v gets rings v, v+n, v+2n, ... where n
// is the group size and ring 1 is the outermost. Each vehicle's rings are
// joined into one headland path.
//
// # Order of work
//
// Everything except the final per-vehicle path is computed in New:
//
//  1. the headland count is rounded up to a multiple of the group size,
//  2. rings are generated and, with island bypass on, routed around big
//     islands,
//  3. either headlands are connected first and the center starts where the
//     first vehicle's headland path ends, or the center is generated first
//     and every headland path starts where the center ends,
//  4. headland paths are routed around small islands, then the center is
//     routed around small islands and circles the big ones.
//
// MultiVehicleCourse.Path joins the configured vehicle's headland path with
// the center path on first use and returns the same value afterwards.
//
// # Positions
//
// A vehicle's position is its signed lateral slot in the group. With an odd
// group size slot 0 is the middle vehicle; with an even size there is no
// slot 0. PositionToHeadlandIndex maps slots to 1-based partition indexes.
package course
