// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildSoup(bopts, cons...). Resolves cfg, runs cons in
//     order, then applies the placement transform (scale, offset, jitter).
//   - BuildMesh is BuildSoup followed by halfedge.FromTriangles.
//   - Each constructor appends one connected component; indices are shifted so
//     components never share vertices.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     meshes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Soup is an indexed triangle list: counter-clockwise triangles over Points.
type Soup struct {
	Points    []r3.Vec
	Triangles [][3]int
}

// add appends a component, shifting its indices past the existing points.
func (s *Soup) add(points []r3.Vec, triangles [][3]int) {
	base := len(s.Points)
	s.Points = append(s.Points, points...)
	for _, t := range triangles {
		s.Triangles = append(s.Triangles, [3]int{t[0] + base, t[1] + base, t[2] + base})
	}
}

// Constructor appends a deterministic mesh component to s. Constructors
// validate parameters and return sentinel errors; they never panic.
type Constructor func(s *Soup, cfg builderConfig) error

// BuildSoup resolves bopts, applies all constructors in order and transforms
// the resulting points. Constructor errors are wrapped with "BuildSoup: %w".
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V) for the transform.
func BuildSoup(bopts []BuilderOption, cons ...Constructor) (Soup, error) {
	cfg := newBuilderConfig(bopts...)

	var s Soup
	for i, fn := range cons {
		if fn == nil {
			return Soup{}, fmt.Errorf("BuildSoup: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&s, cfg); err != nil {
			return Soup{}, fmt.Errorf("BuildSoup: %w", err)
		}
	}

	if err := cfg.transform(s.Points); err != nil {
		return Soup{}, fmt.Errorf("BuildSoup: %w", err)
	}
	return s, nil
}

// BuildMesh is BuildSoup followed by halfedge construction. Connectivity
// errors from halfedge are joined with ErrConstructFailed.
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*halfedge.Mesh, error) {
	s, err := BuildSoup(bopts, cons...)
	if err != nil {
		return nil, err
	}
	m, err := halfedge.FromTriangles(s.Points, s.Triangles)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %w: %w", ErrConstructFailed, err)
	}
	return m, nil
}

// =============================================================================
// Fixture factories - implemented in impl_*.go
// =============================================================================

// Triangle builds a single open right triangle in the z=0 plane.
// V=3, E=3, F=1, all edges on the border.
//func Triangle() Constructor

// PlatonicSolid builds a closed, outward-oriented Platonic solid.
// Tetrahedron V4/E6/F4, Cube V8/E18/F12 (each square split in two),
// Octahedron V6/E12/F8, Icosahedron V12/E30/F20.
//func PlatonicSolid(name PlatonicName) Constructor

// Bipyramid builds a closed double cone over an n-gon (n ≥ 3).
// V=n+2, E=3n, F=2n.
//func Bipyramid(n int) Constructor

// Grid builds an open rows×cols sheet of unit cells, two triangles per cell.
// V=(rows+1)(cols+1), E=rows(cols+1)+cols(rows+1)+rows·cols, F=2·rows·cols.
//func Grid(rows, cols int) Constructor
