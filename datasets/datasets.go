// Copyright 2025 The Minitorch Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package datasets provides small 2D classification datasets for training
// and demos.
//
// Example:
//
//	g := datasets.Xor(150)
//	for i, p := range g.X {
//	    fmt.Println(p, g.Y[i])
//	}
package datasets

import (
	"github.com/Effie-Li/minitorch/internal/datasets"
)

// Graph is a labeled 2D point set.
type Graph = datasets.Graph

// Generators, each sampling n points in the unit square.
var (
	// Simple splits by a vertical line.
	Simple = datasets.Simple
	// Diag splits by a diagonal line.
	Diag = datasets.Diag
	// Split marks two vertical bands against the middle.
	Split = datasets.Split
	// Xor marks opposite quadrants.
	Xor = datasets.Xor
	// Circle marks the outside of a centered disk.
	Circle = datasets.Circle
	// Spiral interleaves two spiral arms.
	Spiral = datasets.Spiral
)

// Datasets maps dataset names to their generators.
var Datasets = datasets.Datasets

// Names returns the available dataset names in sorted order.
func Names() []string {
	return datasets.Names()
}
