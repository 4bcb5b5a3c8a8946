package simplify

import "gonum.org/v1/gonum/spatial/r3"

// costState is the lazy-evaluation state of an edge's cost.
type costState uint8

const (
	// costUnresolved: queued ahead of every resolved edge, cost not computed.
	costUnresolved costState = iota
	// costResolved: cost and placement are cached.
	costResolved
	// costInvalid: not queued; waits for a neighbour update.
	costInvalid
)

// notQueued is the heap index of an edge outside the queue.
const notQueued = -1

// edgeRecord is the per-edge cache, indexed by halfedge.EdgeID. Records of
// contracted edges stay behind, inert.
type edgeRecord struct {
	state     costState
	cost      float64
	placement r3.Vec
	index     int // position in the heap, notQueued when absent
}

// resolve caches a computed cost and placement.
func (r *edgeRecord) resolve(cost float64, placement r3.Vec) {
	r.state = costResolved
	r.cost = cost
	r.placement = placement
}

// invalidate forgets the cost; the edge stays out of the queue.
func (r *edgeRecord) invalidate() {
	r.state = costInvalid
	r.cost = 0
}

// reset forgets the cost; the edge must be (re)queued by the caller.
func (r *edgeRecord) reset() {
	r.state = costUnresolved
	r.cost = 0
}
