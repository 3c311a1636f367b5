// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

// NormalizeHeadlandCount returns the number of headland rings actually
// generated for a group: at least one per vehicle, and a multiple of the
// group size.
func NormalizeHeadlandCount(requested, vehicles int) int {
	if requested < vehicles {
		return vehicles
	}
	if rem := requested % vehicles; rem != 0 {
		return requested + vehicles - rem
	}
	return requested
}

// Partition deals items out round-robin to the given number of vehicles.
// Element v-1 of the result holds the items of vehicle v: items v, v+n,
// v+2n, ... (1-based), in their original order.
func Partition[T any](items []T, vehicles int) [][]T {
	out := make([][]T, vehicles)
	for i, item := range items {
		v := i % vehicles
		out[v] = append(out[v], item)
	}
	return out
}
