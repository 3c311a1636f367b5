// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package export turns generated courses into documents a vehicle or a
// person can read: YAML or JSON, one entry per vehicle.
package export
