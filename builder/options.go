// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuilderOption customizes a build by mutating a builderConfig before the
// constructors run.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for jitter. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale multiplies every coordinate by s. Panics unless s is finite and
// positive.
func WithScale(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic("builder: WithScale requires a finite s > 0")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithOffset translates every point by v after scaling.
func WithOffset(v r3.Vec) BuilderOption {
	return func(c *builderConfig) {
		c.offset = v
	}
}

// WithJitter displaces each coordinate by a uniform amount in
// [-amount, amount]. Requires WithSeed or WithRand. Panics unless amount is
// finite and non-negative.
func WithJitter(amount float64) BuilderOption {
	if !(amount >= 0) || math.IsInf(amount, 0) {
		panic("builder: WithJitter requires a finite amount ≥ 0")
	}
	return func(c *builderConfig) {
		c.jitter = amount
	}
}
