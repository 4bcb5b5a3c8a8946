package halfedge

import "fmt"

// Check verifies the connectivity of m and returns an error wrapping
// ErrInconsistent (or ErrNonManifoldVertex) describing the first problem
// found. A nil result means:
//
//   - next/prev are mutual inverses on live halfedges;
//   - each live halfedge chains head-to-tail with its successor;
//   - live faces are triangles whose halfedges all name the face;
//   - no live edge is a loop, and no two live edges join the same vertices;
//   - every live vertex is anchored on one of its own outgoing halfedges and
//     its outgoing halfedges form a single fan;
//   - the live counters match the arenas.
//
// Complexity: O(V + E + F) time, O(V) extra space.
func (m *Mesh) Check() error {
	nEdges := 0
	for e := range m.edgeRemoved {
		if m.edgeRemoved[e] {
			continue
		}
		nEdges++
		for _, h := range [2]HalfedgeID{PrimaryHalfedge(EdgeID(e)), Opposite(PrimaryHalfedge(EdgeID(e)))} {
			he := m.halfedges[h]
			if he.next == NoHalfedge || he.prev == NoHalfedge {
				return fmt.Errorf("%w: halfedge %d is unlinked", ErrInconsistent, h)
			}
			if m.edgeRemoved[EdgeOf(he.next)] || m.edgeRemoved[EdgeOf(he.prev)] {
				return fmt.Errorf("%w: halfedge %d links to a removed edge", ErrInconsistent, h)
			}
			if m.halfedges[he.next].prev != h || m.halfedges[he.prev].next != h {
				return fmt.Errorf("%w: next/prev mismatch at halfedge %d", ErrInconsistent, h)
			}
			if m.Source(he.next) != he.vertex {
				return fmt.Errorf("%w: halfedge %d does not chain into %d", ErrInconsistent, h, he.next)
			}
			if m.vertices[he.vertex].removed {
				return fmt.Errorf("%w: halfedge %d targets removed vertex %d", ErrInconsistent, h, he.vertex)
			}
			if he.face != NoFace {
				if m.faces[he.face].removed {
					return fmt.Errorf("%w: halfedge %d borders removed face %d", ErrInconsistent, h, he.face)
				}
				if m.halfedges[he.next].face != he.face {
					return fmt.Errorf("%w: face %d is not closed at halfedge %d", ErrInconsistent, he.face, h)
				}
			}
		}
		if m.Source(PrimaryHalfedge(EdgeID(e))) == m.Target(PrimaryHalfedge(EdgeID(e))) {
			return fmt.Errorf("%w: edge %d is a loop", ErrInconsistent, e)
		}
	}
	if nEdges != m.nEdges {
		return fmt.Errorf("%w: %d live edges, counter says %d", ErrInconsistent, nEdges, m.nEdges)
	}

	nFaces := 0
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		nFaces++
		h := m.faces[f].halfedge
		if m.halfedges[h].face != FaceID(f) {
			return fmt.Errorf("%w: face %d anchor %d belongs to face %d", ErrInconsistent, f, h, m.halfedges[h].face)
		}
		if m.Next(m.Next(m.Next(h))) != h {
			return fmt.Errorf("%w: face %d is not a triangle", ErrInconsistent, f)
		}
	}
	if nFaces != m.nFaces {
		return fmt.Errorf("%w: %d live faces, counter says %d", ErrInconsistent, nFaces, m.nFaces)
	}

	nVertices := 0
	for v := range m.vertices {
		if m.vertices[v].removed {
			continue
		}
		nVertices++
		h := m.vertices[v].halfedge
		if h == NoHalfedge {
			continue
		}
		if m.edgeRemoved[EdgeOf(h)] || m.Source(h) != VertexID(v) {
			return fmt.Errorf("%w: vertex %d anchored on foreign halfedge %d", ErrInconsistent, v, h)
		}
		seen := make(map[VertexID]struct{})
		borders := 0
		var dup error
		m.ForEachOutgoing(VertexID(v), func(x HalfedgeID) bool {
			if m.Source(x) != VertexID(v) {
				dup = fmt.Errorf("%w: fan of vertex %d leaves through %d", ErrInconsistent, v, x)
				return false
			}
			if _, ok := seen[m.Target(x)]; ok {
				dup = fmt.Errorf("%w: vertices %d and %d joined twice", ErrInconsistent, v, m.Target(x))
				return false
			}
			seen[m.Target(x)] = struct{}{}
			if m.IsBorder(x) {
				borders++
			}
			return true
		})
		if dup != nil {
			return dup
		}
		if borders > 1 {
			return fmt.Errorf("%w: vertex %d has %d border fans", ErrNonManifoldVertex, v, borders)
		}
	}
	if nVertices != m.nVertices {
		return fmt.Errorf("%w: %d live vertices, counter says %d", ErrInconsistent, nVertices, m.nVertices)
	}

	return m.checkFans()
}
