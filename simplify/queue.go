package simplify

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// edgeQueue is a mutable min-heap of edge ids over a record store. Each
// record remembers its heap position, so update and remove run in O(log n)
// without searching.
//
// Ordering: unresolved before resolved; resolved by ascending cost; ties by
// ascending edge id.
type edgeQueue struct {
	records []edgeRecord
	ids     []halfedge.EdgeID
}

// newEdgeQueue returns an empty queue with n unresolved, unqueued records.
func newEdgeQueue(n int) *edgeQueue {
	q := &edgeQueue{
		records: make([]edgeRecord, n),
		ids:     make([]halfedge.EdgeID, 0, n),
	}
	for i := range q.records {
		q.records[i].index = notQueued
	}
	return q
}

// record returns the record of e.
func (q *edgeQueue) record(e halfedge.EdgeID) *edgeRecord { return &q.records[e] }

// queued reports whether e is in the heap.
func (q *edgeQueue) queued(e halfedge.EdgeID) bool { return q.records[e].index != notQueued }

// insert pushes e. Panics if e is already queued.
func (q *edgeQueue) insert(e halfedge.EdgeID) {
	if q.queued(e) {
		panic(fmt.Sprintf("simplify: insert of queued edge %d", e))
	}
	heap.Push(q, e)
}

// update restores heap order after e's record changed. Panics if e is not
// queued.
func (q *edgeQueue) update(e halfedge.EdgeID) {
	if !q.queued(e) {
		panic(fmt.Sprintf("simplify: update of unqueued edge %d", e))
	}
	heap.Fix(q, q.records[e].index)
}

// remove extracts e. Panics if e is not queued.
func (q *edgeQueue) remove(e halfedge.EdgeID) {
	if !q.queued(e) {
		panic(fmt.Sprintf("simplify: remove of unqueued edge %d", e))
	}
	heap.Remove(q, q.records[e].index)
}

// popMin extracts the minimal edge, or reports false on an empty queue.
func (q *edgeQueue) popMin() (halfedge.EdgeID, bool) {
	if len(q.ids) == 0 {
		return -1, false
	}
	return heap.Pop(q).(halfedge.EdgeID), true
}

// Len implements heap.Interface.
func (q *edgeQueue) Len() int { return len(q.ids) }

// Less implements heap.Interface.
func (q *edgeQueue) Less(i, j int) bool {
	a, b := &q.records[q.ids[i]], &q.records[q.ids[j]]
	au, bu := a.state == costUnresolved, b.state == costUnresolved
	if au != bu {
		return au
	}
	if !au && a.cost != b.cost {
		return a.cost < b.cost
	}
	return q.ids[i] < q.ids[j]
}

// Swap implements heap.Interface and keeps the stored positions current.
func (q *edgeQueue) Swap(i, j int) {
	q.ids[i], q.ids[j] = q.ids[j], q.ids[i]
	q.records[q.ids[i]].index = i
	q.records[q.ids[j]].index = j
}

// Push implements heap.Interface; x must be a halfedge.EdgeID.
func (q *edgeQueue) Push(x any) {
	e := x.(halfedge.EdgeID)
	q.records[e].index = len(q.ids)
	q.ids = append(q.ids, e)
}

// Pop implements heap.Interface.
func (q *edgeQueue) Pop() any {
	n := len(q.ids)
	e := q.ids[n-1]
	q.ids = q.ids[:n-1]
	q.records[e].index = notQueued
	return e
}
