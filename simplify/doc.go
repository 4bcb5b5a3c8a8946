// Package simplify reduces a manifold triangle mesh by greedy edge collapse.
//
// Simplify repeatedly contracts the cheapest admissible edge of a
// *halfedge.Mesh until a stop policy fires or no admissible edge remains.
// The mesh is edited in place.
//
// Algorithm:
//
//  1. Collect: every collapsible edge enters a mutable priority queue with an
//     unresolved cost. Unresolved entries sort before every resolved one, so
//     an edge's cost is computed the first time it could be the minimum.
//  2. Loop: pop the minimum.
//     – Unresolved: ask the placement policy, then the cost policy, and
//     reinsert with the resolved cost; drop the edge if either declines.
//     – Resolved: consult the stop policy, then the validity checker
//     (link condition plus normal-deviation test). A valid edge is contracted,
//     its surviving vertex moved to the placement, and every edge around the
//     surviving vertex and its one-ring is reset to unresolved.
//
// Ties between equal costs are broken by ascending edge id, so a run is fully
// deterministic for a given mesh and options.
//
// Policies:
//
//	– CostPolicy       cost(profile, placement) → (float64, ok)
//	– PlacementPolicy  placement(profile) → (r3.Vec, ok)
//	– StopPolicy       shouldStop(cost, profile, initialEdges, currentEdges)
//	– Visitor          observational hooks; embed BaseVisitor for no-ops
//
// Complexity:
//
//	– Time:  O(E log E) queue work plus O(d²) per collapse, d = local degree.
//	– Space: O(E) for the edge records and the heap.
//
// Errors (sentinel):
//
//	– ErrNilMesh         the mesh pointer is nil.
//	– ErrConstraintSize  the constraint map is not sized to Mesh.NumEdgeIDs().
//	– ErrCollapseFailed  the mesh refused a contraction the checker accepted.
//
// Example usage:
//
//	res, err := simplify.Simplify(m,
//	    simplify.WithStop(simplify.EdgeRatioStop(0.25)),
//	    simplify.WithMaxNormalDeviation(math.Pi/4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Collapses)
package simplify
