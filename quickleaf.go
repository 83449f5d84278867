// quickleaf.go: module-level constants
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

const (
	// Version of the quickleaf cache engine.
	Version = "v0.1.0-dev"

	// DefaultCapacity is the capacity applied when Config.Capacity == 0.
	DefaultCapacity = 10_000
)
