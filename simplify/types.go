package simplify

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Sentinel errors returned by Simplify.
var (
	// ErrNilMesh indicates that a nil *halfedge.Mesh was passed to Simplify.
	ErrNilMesh = errors.New("simplify: mesh is nil")

	// ErrConstraintSize indicates a constraint map whose length differs from
	// the mesh's edge id space.
	ErrConstraintSize = errors.New("simplify: constraint map does not match mesh edge ids")

	// ErrCollapseFailed indicates the mesh rejected a contraction that passed
	// the validity checks. The mesh is left as it was before that contraction.
	ErrCollapseFailed = errors.New("simplify: edge contraction failed")

	// ErrNilPolicy is the panic value of option constructors given a nil policy.
	ErrNilPolicy = errors.New("simplify: policy is nil")

	// ErrBadRatio is the panic value of EdgeRatioStop for a ratio outside (0, 1].
	ErrBadRatio = errors.New("simplify: ratio must lie in (0, 1]")

	// ErrBadDeviation is the panic value of WithMaxNormalDeviation for an angle
	// outside (0, π/2].
	ErrBadDeviation = errors.New("simplify: normal deviation must lie in (0, π/2]")
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Finished means the queue ran empty: no admissible edge is left.
	Finished Outcome = iota

	// Stopped means the stop policy fired.
	Stopped
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Finished:
		return "finished"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Result summarizes a run. Both outcomes are successful terminations.
type Result struct {
	Outcome         Outcome
	Collapses       int // accepted contractions
	InitialVertices int
	InitialEdges    int
	FinalVertices   int
	FinalEdges      int
}

// Options configures Simplify.
//
//   - Cost: ranks candidate edges; lower is collapsed first.
//   - Placement: chooses the surviving vertex's position.
//   - Stop: ends the run early.
//   - Visitor: observes the run; never mutates the mesh.
//   - Constraints: edges that must survive. Sized to Mesh.NumEdgeIDs() or
//     empty. Updated in place as contractions merge edges.
//   - FixedBorder: treat border edges as constrained.
//   - MaxNormalDeviation: largest tolerated rotation of a face normal, radians.
type Options struct {
	Cost               CostPolicy
	Placement          PlacementPolicy
	Stop               StopPolicy
	Visitor            Visitor
	Constraints        halfedge.EdgeFlags
	FixedBorder        bool
	MaxNormalDeviation float64
}

// Option represents a functional option for configuring Simplify.
type Option func(*Options)

// WithCost sets the cost policy. Panics on nil.
func WithCost(c CostPolicy) Option {
	if c == nil {
		panic(ErrNilPolicy.Error())
	}
	return func(o *Options) { o.Cost = c }
}

// WithPlacement sets the placement policy. Panics on nil.
func WithPlacement(p PlacementPolicy) Option {
	if p == nil {
		panic(ErrNilPolicy.Error())
	}
	return func(o *Options) { o.Placement = p }
}

// WithStop sets the stop policy. Panics on nil.
func WithStop(s StopPolicy) Option {
	if s == nil {
		panic(ErrNilPolicy.Error())
	}
	return func(o *Options) { o.Stop = s }
}

// WithVisitor installs v. Panics on nil.
func WithVisitor(v Visitor) Option {
	if v == nil {
		panic(ErrNilPolicy.Error())
	}
	return func(o *Options) { o.Visitor = v }
}

// WithConstraints marks edges that must never be collapsed. The map is
// shared, not copied: after the run it describes the surviving edges.
func WithConstraints(c halfedge.EdgeFlags) Option {
	return func(o *Options) { o.Constraints = c }
}

// WithFixedBorder keeps every border edge, and pins no vertex by itself;
// pair it with ConstrainedPlacement to keep border vertices in place.
func WithFixedBorder() Option {
	return func(o *Options) { o.FixedBorder = true }
}

// WithMaxNormalDeviation rejects collapses that rotate any surrounding face
// normal by more than angle radians. The default π/2 only rejects flips.
func WithMaxNormalDeviation(angle float64) Option {
	if !(angle > 0 && angle <= math.Pi/2) {
		panic(ErrBadDeviation.Error())
	}
	return func(o *Options) { o.MaxNormalDeviation = angle }
}

// DefaultOptions returns the configuration Simplify starts from.
//
// Defaults:
//   - Cost:               EdgeLengthCost (squared length).
//   - Placement:          MidpointPlacement.
//   - Stop:               EdgeRatioStop(0.5).
//   - Visitor:            BaseVisitor (no-op).
//   - Constraints:        none.
//   - FixedBorder:        false.
//   - MaxNormalDeviation: π/2.
func DefaultOptions() Options {
	return Options{
		Cost:               EdgeLengthCost{},
		Placement:          MidpointPlacement{},
		Stop:               EdgeRatioStop(0.5),
		Visitor:            BaseVisitor{},
		MaxNormalDeviation: math.Pi / 2,
	}
}
