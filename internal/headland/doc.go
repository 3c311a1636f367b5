// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package headland generates the concentric boundary passes of a field and
// stitches an ordered subset of them into one drivable path.
//
// Rings are always produced outermost first: ring number 1 runs along the
// field edge, ring n is the innermost. Every ring is one working width wide,
// no matter how many vehicles share the field.
package headland
