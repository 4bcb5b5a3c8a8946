// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// variants_platonic.go: canonical data for Platonic solids.
//
// Design:
//   • Single source of truth for the supported solids (points and faces).
//   • Faces are counter-clockwise seen from outside; every edge is traversed
//     once in each direction.
//   • Datasets are package-level and never mutated; constructors copy them.
//
// Embeddings:
//   • Tetrahedron: alternate corners of the cube [-1,1]³.
//   • Cube: the unit cube [0,1]³, vertex i at (i&1, i>>1&1, i>>2&1), each
//     square split along the diagonal through its first corner.
//   • Octahedron: the unit points on the coordinate axes.
//   • Icosahedron: cyclic permutations of (0, ±1, ±φ).

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron PlatonicName = iota // V=4,  E=6,  F=4
	Cube                            // V=8,  E=18, F=12
	Octahedron                      // V=6,  E=12, F=8
	Icosahedron                     // V=12, E=30, F=20
)

// platonicSolid is one immutable dataset.
type platonicSolid struct {
	points []r3.Vec
	faces  [][3]int
}

// phi is the golden ratio.
var phi = (1 + math.Sqrt(5)) / 2

var platonicSolids = map[PlatonicName]platonicSolid{
	Tetrahedron: {
		points: []r3.Vec{
			{X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: 1},
		},
		faces: [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}},
	},
	Cube: {
		points: []r3.Vec{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1},
		},
		faces: [][3]int{
			{0, 2, 3}, {0, 3, 1}, // z=0
			{4, 5, 7}, {4, 7, 6}, // z=1
			{0, 1, 5}, {0, 5, 4}, // y=0
			{2, 6, 7}, {2, 7, 3}, // y=1
			{0, 4, 6}, {0, 6, 2}, // x=0
			{1, 3, 7}, {1, 7, 5}, // x=1
		},
	},
	Octahedron: {
		points: []r3.Vec{
			{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
		},
		faces: [][3]int{
			{0, 2, 4}, {1, 4, 2}, {0, 4, 3}, {0, 5, 2},
			{1, 3, 4}, {1, 2, 5}, {0, 3, 5}, {1, 5, 3},
		},
	},
	Icosahedron: {
		points: []r3.Vec{
			{X: -1, Y: phi}, {X: 1, Y: phi}, {X: -1, Y: -phi}, {X: 1, Y: -phi},
			{Y: -1, Z: phi}, {Y: 1, Z: phi}, {Y: -1, Z: -phi}, {Y: 1, Z: -phi},
			{X: phi, Z: -1}, {X: phi, Z: 1}, {X: -phi, Z: -1}, {X: -phi, Z: 1},
		},
		faces: [][3]int{
			{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
			{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
			{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
			{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
		},
	},
}
