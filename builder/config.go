// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil          (no randomness unless seeded)
//   • scale   = 1.0
//   • offset  = (0, 0, 0)
//   • jitter  = 0.0
//
// Transform order: p' = scale·p + offset + U(-jitter, jitter)³.

package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// builderConfig aggregates all knobs used by constructors and the transform.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for jitter; nil means “no randomness”.
	rng *rand.Rand

	scale  float64 // > 0
	offset r3.Vec
	jitter float64 // ≥ 0; requires rng when > 0
}

const (
	defaultScale  = 1.0
	defaultJitter = 0.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		scale:  defaultScale,
		jitter: defaultJitter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// transform moves points in place according to cfg.
func (cfg builderConfig) transform(points []r3.Vec) error {
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("jitter %g: %w", cfg.jitter, ErrNeedRandSource)
	}
	for i, p := range points {
		p = r3.Add(r3.Scale(cfg.scale, p), cfg.offset)
		if cfg.jitter > 0 {
			p = r3.Add(p, r3.Vec{
				X: cfg.jitter * (2*cfg.rng.Float64() - 1),
				Y: cfg.jitter * (2*cfg.rng.Float64() - 1),
				Z: cfg.jitter * (2*cfg.rng.Float64() - 1),
			})
		}
		points[i] = p
	}
	return nil
}
