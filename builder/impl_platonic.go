// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name) and Triangle().
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Points and faces are copied from variants_platonic.go in stored order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(V+F) for the selected solid (V≤12, F≤20).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// PlatonicSolid returns a Constructor that appends the chosen closed solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *Soup, cfg builderConfig) error {
		// 1) Lookup the canonical dataset.
		solid, ok := platonicSolids[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}

		// 2) Append; Soup.add shifts indices past earlier components.
		s.add(solid.points, solid.faces)
		return nil
	}
}

// Triangle returns a Constructor that appends one open right triangle with
// unit legs in the z=0 plane.
func Triangle() Constructor {
	return func(s *Soup, cfg builderConfig) error {
		s.add(
			[]r3.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
			[][3]int{{0, 1, 2}},
		)
		return nil
	}
}
