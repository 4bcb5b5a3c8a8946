// Package builder provides deterministic triangle-mesh fixtures composed in a
// “functional-options” style, for tests, benchmarks and examples of the
// simplification packages.
//
// The package offers the following key components:
//
//   - Orchestrators:
//     – BuildSoup:   run constructors into an indexed triangle Soup.
//     – BuildMesh:   BuildSoup followed by halfedge.FromTriangles.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for jitter.
//     – WithScale / WithOffset / WithJitter: point transform.
//   - Constructors (each appends one connected component):
//     – Triangle():            V3  E3  F1, open.
//     – PlatonicSolid(name):   Tetrahedron, Cube, Octahedron, Icosahedron, closed.
//     – Bipyramid(n):          V=n+2, E=3n, F=2n, closed.
//     – Grid(rows, cols):      open sheet of unit cells.
//   - Validation helpers:
//     – validateMin: ensure integer ≥ minimum, wrapping ErrTooFewCells.
//
// Guarantees:
//
//   - Every face is counter-clockwise seen from outside (or from +z for the
//     open fixtures), so outputs are valid halfedge input.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (ErrTooFewCells, ErrOptionViolation);
//     BuildSoup/BuildMesh wrap them with %w.
//   - Same options, seed and constructor order ⇒ identical output.
//
// Example:
//
//	m, err := builder.BuildMesh(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithJitter(0.01)},
//	    builder.Grid(8, 8),
//	)
package builder
