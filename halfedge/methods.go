package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// Next returns the halfedge following h around its face (or border loop).
func (m *Mesh) Next(h HalfedgeID) HalfedgeID { return m.halfedges[h].next }

// Prev returns the halfedge preceding h around its face (or border loop).
func (m *Mesh) Prev(h HalfedgeID) HalfedgeID { return m.halfedges[h].prev }

// Target returns the vertex h points to.
func (m *Mesh) Target(h HalfedgeID) VertexID { return m.halfedges[h].vertex }

// Source returns the vertex h starts from.
func (m *Mesh) Source(h HalfedgeID) VertexID { return m.halfedges[Opposite(h)].vertex }

// Face returns the face to the left of h, or NoFace on the border.
func (m *Mesh) Face(h HalfedgeID) FaceID { return m.halfedges[h].face }

// IsBorder reports whether h has no incident face.
func (m *Mesh) IsBorder(h HalfedgeID) bool { return m.halfedges[h].face == NoFace }

// IsBorderEdge reports whether either halfedge of e is a border halfedge.
func (m *Mesh) IsBorderEdge(e EdgeID) bool {
	h := PrimaryHalfedge(e)
	return m.IsBorder(h) || m.IsBorder(Opposite(h))
}

// IsBorderVertex reports whether v has an outgoing border halfedge.
func (m *Mesh) IsBorderVertex(v VertexID) bool {
	border := false
	m.ForEachOutgoing(v, func(h HalfedgeID) bool {
		border = m.IsBorder(h)
		return !border
	})
	return border
}

// Halfedge returns an outgoing halfedge of v, or NoHalfedge for an isolated
// vertex. Border vertices answer with their border halfedge.
func (m *Mesh) Halfedge(v VertexID) HalfedgeID { return m.vertices[v].halfedge }

// FaceHalfedge returns one halfedge of f.
func (m *Mesh) FaceHalfedge(f FaceID) HalfedgeID { return m.faces[f].halfedge }

// Point returns the position of v.
func (m *Mesh) Point(v VertexID) r3.Vec { return m.vertices[v].point }

// SetPoint moves v to p.
func (m *Mesh) SetPoint(v VertexID, p r3.Vec) { m.vertices[v].point = p }

// VertexCount returns the number of live vertices, isolated ones included.
func (m *Mesh) VertexCount() int { return m.nVertices }

// EdgeCount returns the number of live edges.
func (m *Mesh) EdgeCount() int { return m.nEdges }

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int { return m.nFaces }

// NumEdgeIDs returns the size of the edge id space (live and removed).
func (m *Mesh) NumEdgeIDs() int { return len(m.edgeRemoved) }

// NumVertexIDs returns the size of the vertex id space (live and removed).
func (m *Mesh) NumVertexIDs() int { return len(m.vertices) }

// NumFaceIDs returns the size of the face id space (live and removed).
func (m *Mesh) NumFaceIDs() int { return len(m.faces) }

// IsEdgeRemoved reports whether e was deleted by a contraction.
func (m *Mesh) IsEdgeRemoved(e EdgeID) bool { return m.edgeRemoved[e] }

// IsVertexRemoved reports whether v was deleted by a contraction.
func (m *Mesh) IsVertexRemoved(v VertexID) bool { return m.vertices[v].removed }

// IsFaceRemoved reports whether f was deleted by a contraction.
func (m *Mesh) IsFaceRemoved(f FaceID) bool { return m.faces[f].removed }

// IsClosed reports whether no live edge lies on the border.
func (m *Mesh) IsClosed() bool {
	for e := range m.edgeRemoved {
		if !m.edgeRemoved[e] && m.IsBorderEdge(EdgeID(e)) {
			return false
		}
	}
	return true
}

// ForEachEdge calls fn for every live edge in ascending id order until fn
// returns false.
func (m *Mesh) ForEachEdge(fn func(e EdgeID) bool) {
	for e := range m.edgeRemoved {
		if m.edgeRemoved[e] {
			continue
		}
		if !fn(EdgeID(e)) {
			return
		}
	}
}

// ForEachOutgoing calls fn for every halfedge leaving v, rotating from the
// vertex anchor, until fn returns false.
func (m *Mesh) ForEachOutgoing(v VertexID, fn func(h HalfedgeID) bool) {
	start := m.vertices[v].halfedge
	if start == NoHalfedge {
		return
	}
	h := start
	for {
		// Capture the successor first so fn may inspect freely.
		next := m.Next(Opposite(h))
		if !fn(h) {
			return
		}
		h = next
		if h == start {
			return
		}
	}
}

// Degree returns the number of edges incident to v.
func (m *Mesh) Degree(v VertexID) int {
	n := 0
	m.ForEachOutgoing(v, func(HalfedgeID) bool {
		n++
		return true
	})
	return n
}

// FindHalfedge returns the halfedge from u to v, or NoHalfedge if the two
// vertices are not adjacent.
func (m *Mesh) FindHalfedge(u, v VertexID) HalfedgeID {
	found := NoHalfedge
	m.ForEachOutgoing(u, func(h HalfedgeID) bool {
		if m.Target(h) == v {
			found = h
			return false
		}
		return true
	})
	return found
}

// FaceVertices returns the three corners of f in loop order.
func (m *Mesh) FaceVertices(f FaceID) [3]VertexID {
	h := m.faces[f].halfedge
	return [3]VertexID{m.Source(h), m.Target(h), m.Target(m.Next(h))}
}

// FaceNormal returns the unnormalized normal of f (twice its area in length).
func (m *Mesh) FaceNormal(f FaceID) r3.Vec {
	c := m.FaceVertices(f)
	return TriangleNormal(m.Point(c[0]), m.Point(c[1]), m.Point(c[2]))
}

// TriangleNormal returns (b-a)×(c-a).
func TriangleNormal(a, b, c r3.Vec) r3.Vec {
	return r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
}
