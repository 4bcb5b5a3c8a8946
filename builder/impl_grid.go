// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • An open sheet of rows×cols unit cells in the z=0 plane.
//   • Vertex (r,c) sits at (c, r, 0) with index r·(cols+1)+c (row-major).
//   • Cell (r,c) with corners a=(r,c), b=(r,c+1), d=(r+1,c), e=(r+1,c+1)
//     is split along a–e into (a,b,e) and (a,e,d), both facing +z.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewCells).
//   • Emits cells in row-major order, lower triangle first.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(rows*cols) for the appended points and triangles.

package builder

import "gonum.org/v1/gonum/spatial/r3"

// Grid returns a Constructor that appends a rows×cols triangulated sheet.
func Grid(rows, cols int) Constructor {
	return func(s *Soup, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}

		// 2) Lattice points in row-major order.
		stride := cols + 1
		points := make([]r3.Vec, 0, (rows+1)*stride)
		for r := 0; r <= rows; r++ {
			for c := 0; c <= cols; c++ {
				points = append(points, r3.Vec{X: float64(c), Y: float64(r)})
			}
		}

		// 3) Two triangles per cell.
		triangles := make([][3]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				a := r*stride + c
				b, d := a+1, a+stride
				e := d + 1
				triangles = append(triangles, [3]int{a, b, e}, [3]int{a, e, d})
			}
		}

		s.add(points, triangles)
		return nil
	}
}
