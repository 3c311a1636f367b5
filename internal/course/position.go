// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package course

import "fmt"

// PositionToHeadlandIndex maps a signed slot in a group of vehicles to the
// 1-based index of the headland partition that vehicle drives. Slots outside
// ValidPositions map outside 1..vehicles.
func PositionToHeadlandIndex(position, vehicles int) int {
	if vehicles%2 == 0 {
		if position < 0 {
			return position + vehicles/2 + 1
		}
		return position + vehicles/2
	}
	return position + vehicles/2 + 1
}

// ValidPositions lists the slots of a group, left to right.
func ValidPositions(vehicles int) []int {
	var out []int
	for p := -vehicles / 2; p <= vehicles/2; p++ {
		if p == 0 && vehicles%2 == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ValidatePosition returns a ConfigError when position is not a slot of a
// group of the given size.
func ValidatePosition(position, vehicles int) error {
	if vehicles < 1 {
		return &ConfigError{Field: "vehicles", Reason: fmt.Sprintf("must be at least 1, got %d", vehicles)}
	}
	idx := PositionToHeadlandIndex(position, vehicles)
	if idx < 1 || idx > vehicles || (position == 0 && vehicles%2 == 0) {
		return &ConfigError{
			Field:  "position",
			Reason: fmt.Sprintf("%d is not a slot of a %d vehicle group, valid slots are %v", position, vehicles, ValidPositions(vehicles)),
		}
	}
	return nil
}
