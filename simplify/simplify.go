package simplify

import (
	"fmt"
	"math"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Simplify collapses edges of m, cheapest first, until the stop policy fires
// or no admissible edge remains. m is modified in place; removed elements
// keep their ids and read as removed.
//
// Preconditions:
//  1. m must be non-nil (ErrNilMesh).
//  2. Constraints, if any, must be sized to m.NumEdgeIDs() (ErrConstraintSize).
//
// Both Finished and Stopped are successful outcomes. A non-nil error other
// than the two above wraps ErrCollapseFailed and means the mesh and the
// checker disagree; the returned Result is still accurate.
func Simplify(m *halfedge.Mesh, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return Result{}, ErrNilMesh
	}
	if len(cfg.Constraints) != 0 && len(cfg.Constraints) != m.NumEdgeIDs() {
		return Result{}, fmt.Errorf("%w: %d flags for %d edge ids",
			ErrConstraintSize, len(cfg.Constraints), m.NumEdgeIDs())
	}

	// 3) Run.
	r := newRunner(m, cfg)
	r.collect()
	outcome, err := r.loop()

	res := Result{
		Outcome:         outcome,
		Collapses:       r.collapses,
		InitialVertices: r.initialVertices,
		InitialEdges:    r.initialEdges,
		FinalVertices:   m.VertexCount(),
		FinalEdges:      m.EdgeCount(),
	}
	if err != nil {
		return res, err
	}

	klog.V(2).Infof("simplify: %s after %d collapses; vertices %d→%d, edges %d→%d",
		res.Outcome, res.Collapses, res.InitialVertices, res.FinalVertices, res.InitialEdges, res.FinalEdges)
	return res, nil
}

// runner holds the mutable state of one Simplify call.
type runner struct {
	mesh    *halfedge.Mesh
	opts    Options
	visitor Visitor
	queue   *edgeQueue
	cos2    float64 // squared cosine of the largest tolerated normal rotation

	seen  []int // neighbour-update stamps, indexed by edge id
	stamp int

	initialVertices int
	initialEdges    int
	collapses       int
}

func newRunner(m *halfedge.Mesh, cfg Options) *runner {
	c := math.Cos(cfg.MaxNormalDeviation)
	visitor := cfg.Visitor
	if visitor == nil {
		visitor = BaseVisitor{}
	}
	return &runner{
		mesh:            m,
		opts:            cfg,
		visitor:         visitor,
		queue:           newEdgeQueue(m.NumEdgeIDs()),
		cos2:            c * c,
		seen:            make([]int, m.NumEdgeIDs()),
		initialVertices: m.VertexCount(),
		initialEdges:    m.EdgeCount(),
	}
}

// collect queues every candidate edge with an unresolved cost.
func (r *runner) collect() {
	r.mesh.ForEachEdge(func(e halfedge.EdgeID) bool {
		if r.isCandidate(e) {
			r.queue.insert(e)
		} else {
			r.queue.record(e).invalidate()
		}
		return true
	})
	klog.V(2).Infof("simplify: collected %d of %d edges", r.queue.Len(), r.initialEdges)
}

// loop pops until the queue empties or the stop policy fires.
func (r *runner) loop() (Outcome, error) {
	m := r.mesh
	for {
		// 1) Extract the minimum.
		e, ok := r.queue.popMin()
		if !ok {
			return Finished, nil
		}
		rec := r.queue.record(e)
		p := r.profile(e)

		// 2) Unresolved: compute placement and cost, then requeue or drop.
		if rec.state == costUnresolved {
			placement, ok := r.opts.Placement.Placement(&p)
			if !ok {
				rec.invalidate()
				continue
			}
			cost, ok := r.opts.Cost.Cost(&p, placement)
			if !ok {
				rec.invalidate()
				continue
			}
			rec.resolve(cost, placement)
			r.queue.insert(e)
			continue
		}

		// 3) Resolved: this is the true minimum.
		current := m.EdgeCount()
		r.visitor.OnSelected(&p, rec.cost, r.initialEdges, current)
		if r.opts.Stop.ShouldStop(rec.cost, &p, r.initialEdges, current) {
			r.visitor.OnStopConditionReached(&p)
			return Stopped, nil
		}

		// 4) Validate against the cached placement; drop on failure.
		if !r.isCollapsible(&p, rec.placement) {
			rec.invalidate()
			r.visitor.OnNonCollapsible(&p)
			continue
		}

		// 5) Contract and requeue the neighbourhood.
		if err := r.collapse(&p, rec.placement); err != nil {
			return Finished, err
		}
	}
}

// hasConstraints reports whether any edge can be constrained in this run.
func (r *runner) hasConstraints() bool {
	return r.opts.FixedBorder || len(r.opts.Constraints) > 0
}

// isConstrainedEdge reports whether e must survive the run.
func (r *runner) isConstrainedEdge(e halfedge.EdgeID) bool {
	if r.opts.Constraints.Has(e) {
		return true
	}
	return r.opts.FixedBorder && r.mesh.IsBorderEdge(e)
}

// isConstrainedVertex reports whether any edge around v is constrained.
func (r *runner) isConstrainedVertex(v halfedge.VertexID) bool {
	constrained := false
	r.mesh.ForEachOutgoing(v, func(h halfedge.HalfedgeID) bool {
		constrained = r.isConstrainedEdge(halfedge.EdgeOf(h))
		return !constrained
	})
	return constrained
}

// isCandidate reports whether e may enter the queue: live, unconstrained,
// and next to at least one face.
func (r *runner) isCandidate(e halfedge.EdgeID) bool {
	m := r.mesh
	if m.IsEdgeRemoved(e) || r.isConstrainedEdge(e) {
		return false
	}
	h := halfedge.PrimaryHalfedge(e)
	return !m.IsBorder(h) || !m.IsBorder(halfedge.Opposite(h))
}
