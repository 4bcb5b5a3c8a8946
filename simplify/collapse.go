package simplify

import (
	"fmt"

	"github.com/plan-systems/klog"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// collapse contracts p's edge, moves the survivor to placement and requeues
// the neighbourhood.
func (r *runner) collapse(p *Profile, placement r3.Vec) error {
	m := r.mesh
	r.visitor.OnCollapsing(p, placement)

	// 1) Edges that may vanish with the two faces: the side edges.
	var sides [4]halfedge.EdgeID
	sides[0], sides[1] = halfedge.EdgeOf(m.Next(p.v0v1)), halfedge.EdgeOf(m.Prev(p.v0v1))
	sides[2], sides[3] = halfedge.EdgeOf(m.Next(p.v1v0)), halfedge.EdgeOf(m.Prev(p.v1v0))

	// 2) Contract, carrying the caller's constraint flags.
	kept, err := m.ContractEdge(p.v0v1, r.opts.Constraints)
	if err != nil {
		return fmt.Errorf("%w: edge %d (%d→%d): %w", ErrCollapseFailed, p.Edge(), p.v0, p.v1, err)
	}
	m.SetPoint(kept, placement)
	r.collapses++

	// 3) Retire records of merged-away edges.
	for _, e := range sides {
		if m.IsEdgeRemoved(e) && r.queue.queued(e) {
			r.queue.remove(e)
		}
	}

	klog.V(3).Infof("simplify: collapsed edge %d, vertex %d into %d at (%g, %g, %g); %d edges left",
		p.Edge(), p.v1, kept, placement.X, placement.Y, placement.Z, m.EdgeCount())

	r.visitor.OnCollapsed(p, kept)

	// 4) Everything around the survivor changed.
	r.updateNeighbors(kept)
	return nil
}

// updateNeighbors resets every edge incident to v or to one of v's
// neighbours. Each such edge goes back into the queue unresolved; edges that
// can no longer collapse leave it.
func (r *runner) updateNeighbors(v halfedge.VertexID) {
	m := r.mesh
	r.stamp++

	touch := func(h halfedge.HalfedgeID) bool {
		e := halfedge.EdgeOf(h)
		if r.seen[e] == r.stamp {
			return true
		}
		r.seen[e] = r.stamp
		r.requeue(e)
		return true
	}
	m.ForEachOutgoing(v, func(h halfedge.HalfedgeID) bool {
		touch(h)
		m.ForEachOutgoing(m.Target(h), touch)
		return true
	})
}

// requeue resets e's cost and moves it to the front of the queue, or takes
// it out when it has become constrained or faceless.
func (r *runner) requeue(e halfedge.EdgeID) {
	rec := r.queue.record(e)
	if !r.isCandidate(e) {
		if r.queue.queued(e) {
			r.queue.remove(e)
		}
		rec.invalidate()
		return
	}
	rec.reset()
	if r.queue.queued(e) {
		r.queue.update(e)
	} else {
		r.queue.insert(e)
	}
}
