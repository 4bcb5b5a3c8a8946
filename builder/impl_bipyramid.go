// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_bipyramid.go: implementation of Bipyramid(n) constructor.
//
// Canonical definition:
//   • A wheel closed on both sides: a ring of n vertices on the unit circle
//     in z=0 plus apexes (0,0,1) and (0,0,-1).
//   • Ring vertex i has index i; the top apex is n, the bottom apex n+1.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewCells).
//   • Emits the n top faces (i, i+1, top), then the n bottom faces
//     (i+1, i, bottom), in ring order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n).

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bipyramid returns a Constructor that appends a closed n-gonal bipyramid.
func Bipyramid(n int) Constructor {
	return func(s *Soup, cfg builderConfig) error {
		// 1) Validate.
		if err := validateMin(MethodBipyramid, n, MinBipyramidRing); err != nil {
			return err
		}

		// 2) Ring, then apexes.
		points := make([]r3.Vec, 0, n+2)
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			points = append(points, r3.Vec{X: math.Cos(a), Y: math.Sin(a)})
		}
		top, bottom := n, n+1
		points = append(points, r3.Vec{Z: 1}, r3.Vec{Z: -1})

		// 3) Faces, counter-clockwise from outside.
		triangles := make([][3]int, 0, 2*n)
		for i := 0; i < n; i++ {
			triangles = append(triangles, [3]int{i, (i + 1) % n, top})
		}
		for i := 0; i < n; i++ {
			triangles = append(triangles, [3]int{(i + 1) % n, i, bottom})
		}

		s.add(points, triangles)
		return nil
	}
}
