// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic description of the work to
// plan: the fields with their islands and the vehicle group driving them,
// along with the Loader interface that fills it from some source.
//
// Concrete loaders, such as the HCL one, live in separate packages.
package config
