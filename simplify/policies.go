package simplify

import "gonum.org/v1/gonum/spatial/r3"

// CostPolicy ranks a candidate collapse. ok=false marks the edge as not
// collapsible until a neighbouring collapse changes it.
type CostPolicy interface {
	Cost(p *Profile, placement r3.Vec) (cost float64, ok bool)
}

// PlacementPolicy chooses where the surviving vertex goes. ok=false marks the
// edge as not collapsible until a neighbouring collapse changes it.
type PlacementPolicy interface {
	Placement(p *Profile) (r3.Vec, bool)
}

// StopPolicy is consulted with the cheapest resolved candidate before it is
// collapsed. Returning true ends the run with Outcome Stopped.
type StopPolicy interface {
	ShouldStop(cost float64, p *Profile, initialEdges, currentEdges int) bool
}

// CostFunc adapts a function to CostPolicy.
type CostFunc func(p *Profile, placement r3.Vec) (float64, bool)

// Cost calls f.
func (f CostFunc) Cost(p *Profile, placement r3.Vec) (float64, bool) { return f(p, placement) }

// PlacementFunc adapts a function to PlacementPolicy.
type PlacementFunc func(p *Profile) (r3.Vec, bool)

// Placement calls f.
func (f PlacementFunc) Placement(p *Profile) (r3.Vec, bool) { return f(p) }

// StopFunc adapts a function to StopPolicy.
type StopFunc func(cost float64, p *Profile, initialEdges, currentEdges int) bool

// ShouldStop calls f.
func (f StopFunc) ShouldStop(cost float64, p *Profile, initialEdges, currentEdges int) bool {
	return f(cost, p, initialEdges, currentEdges)
}

// EdgeLengthCost ranks edges by squared length.
type EdgeLengthCost struct{}

// Cost implements CostPolicy.
func (EdgeLengthCost) Cost(p *Profile, _ r3.Vec) (float64, bool) {
	return r3.Norm2(r3.Sub(p.P1(), p.P0())), true
}

// MidpointPlacement places the surviving vertex halfway along the edge.
type MidpointPlacement struct{}

// Placement implements PlacementPolicy.
func (MidpointPlacement) Placement(p *Profile) (r3.Vec, bool) {
	return r3.Scale(0.5, r3.Add(p.P0(), p.P1())), true
}

// ConstrainedPlacement keeps a constrained endpoint where it is and defers to
// Base (MidpointPlacement when nil) otherwise.
type ConstrainedPlacement struct {
	Base PlacementPolicy
}

// Placement implements PlacementPolicy.
func (c ConstrainedPlacement) Placement(p *Profile) (r3.Vec, bool) {
	switch {
	case p.IsV0Constrained() && !p.IsV1Constrained():
		return p.P0(), true
	case p.IsV1Constrained() && !p.IsV0Constrained():
		return p.P1(), true
	case c.Base == nil:
		return MidpointPlacement{}.Placement(p)
	default:
		return c.Base.Placement(p)
	}
}

// EdgeCountStop stops once the mesh has at most n live edges.
func EdgeCountStop(n int) StopPolicy {
	return StopFunc(func(_ float64, _ *Profile, _, current int) bool {
		return current <= n
	})
}

// EdgeRatioStop stops once fewer than ratio·initial edges remain.
// Panics unless 0 < ratio ≤ 1.
func EdgeRatioStop(ratio float64) StopPolicy {
	if !(ratio > 0 && ratio <= 1) {
		panic(ErrBadRatio.Error())
	}
	return StopFunc(func(_ float64, _ *Profile, initial, current int) bool {
		return float64(current) < ratio*float64(initial)
	})
}

// CostStop stops once the cheapest candidate costs more than max.
func CostStop(max float64) StopPolicy {
	return StopFunc(func(cost float64, _ *Profile, _, _ int) bool {
		return cost > max
	})
}

// NeverStop runs until no admissible edge remains.
func NeverStop() StopPolicy {
	return StopFunc(func(float64, *Profile, int, int) bool { return false })
}
