// Package halfedge provides an arena-backed halfedge mesh for manifold
// triangle surfaces, with the traversal and edit primitives needed by
// edge-collapse simplification.
//
// Storage model:
//
//   - Halfedges, vertices and faces live in slices and are addressed by
//     integer ids (HalfedgeID, VertexID, FaceID). NoHalfedge, NoVertex and
//     NoFace (-1) mark absent references.
//   - Halfedges are allocated in opposite pairs (2e, 2e+1), so
//     Opposite(h) == h^1 and the undirected edge id is h/2. The even member
//     is the "primary" halfedge of its edge.
//   - A border halfedge has no incident face. Border halfedges are linked
//     into loops through Next/Prev just like face halfedges.
//   - Edits never allocate. Removed elements stay in the arenas, marked
//     dead, so every id handed out remains stable for the life of the mesh.
//
// Building:
//
//	m, err := halfedge.FromTriangles(points, [][3]int{{0, 1, 2}, {0, 2, 3}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// FromTriangles rejects non-manifold input (an edge shared by more than two
// faces, inconsistent orientation, or a vertex whose border is pinched).
//
// Editing:
//
//	kept, err := m.ContractEdge(h, constrained)
//
// ContractEdge merges Target(h) into Source(h), deletes the edge and up to
// two incident faces, and carries constraint flags onto the edges that
// survive. It performs no validity checks beyond its own preconditions;
// deciding whether a contraction preserves manifoldness is the caller's job.
//
// A Mesh is not safe for concurrent mutation.
package halfedge
