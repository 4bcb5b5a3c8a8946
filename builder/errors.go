// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewCells indicates that a size parameter (rows, cols, ring size) is
// smaller than the constructor's minimum.
// Usage: if errors.Is(err, ErrTooFewCells) { /* report invalid size */ }.
var ErrTooFewCells = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates jitter was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOptionViolation indicates a constructor received a value outside its
// domain, such as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrConstructFailed indicates the assembled soup could not be built into a
// manifold mesh, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
