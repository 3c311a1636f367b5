// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file parsing, HCL-to-model translation,
// and cty-to-Go data binding of coordinates.
package hcl
