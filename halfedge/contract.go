package halfedge

import "fmt"

// ContractEdge collapses the edge of h, merging v1 = Target(h) into
// v0 = Source(h), and returns v0. The edge and its (up to two) incident faces
// are deleted; in each deleted face the two remaining edges become one.
//
// If constrained is non-empty it is updated in place: an edge surviving a
// merge is constrained when either merged edge was.
//
// Face on the left of h (when present):
//
//	      vL
//	  hp ↗  ↘ hn          hn (v1→vL) is deleted, hp (vL→v0) takes the
//	   v0 ──h──▶ v1       place of opposite(hn) in its loop.
//
// The right face of h is handled symmetrically with opposite(h).
//
// ContractEdge does not check the link condition; contracting an edge that
// violates it leaves the mesh non-manifold.
func (m *Mesh) ContractEdge(h HalfedgeID, constrained EdgeFlags) (VertexID, error) {
	// 1) Preconditions.
	if h < 0 || int(h) >= len(m.halfedges) || m.edgeRemoved[EdgeOf(h)] {
		return NoVertex, fmt.Errorf("%w: halfedge %d is not live", ErrNotContractible, h)
	}
	o := Opposite(h)
	top, bottom := !m.IsBorder(h), !m.IsBorder(o)
	if !top && !bottom {
		return NoVertex, fmt.Errorf("%w: edge %d has no incident face", ErrNotContractible, EdgeOf(h))
	}
	v0, v1 := m.Source(h), m.Target(h)

	// 2) Remember the fans of both endpoints before any rewiring.
	var fan0, fan1 []HalfedgeID
	m.ForEachOutgoing(v0, func(x HalfedgeID) bool { fan0 = append(fan0, x); return true })
	m.ForEachOutgoing(v1, func(x HalfedgeID) bool { fan1 = append(fan1, x); return true })

	// 3) Dissolve the face left of h.
	if top {
		hn, hp := m.Next(h), m.Prev(h)
		m.dissolve(h, hn, hp, constrained)
	} else {
		m.link(m.Prev(h), m.Next(h))
	}

	// 4) Dissolve the face left of opposite(h).
	if bottom {
		on, op := m.Next(o), m.Prev(o)
		m.dissolve(o, op, on, constrained)
	} else {
		m.link(m.Prev(o), m.Next(o))
	}

	// 5) Delete the contracted edge and v1; redirect v1's incoming halfedges.
	m.removeEdge(EdgeOf(h))
	for _, x := range fan1 {
		if !m.edgeRemoved[EdgeOf(x)] {
			m.halfedges[Opposite(x)].vertex = v0
		}
	}
	m.vertices[v1].removed = true
	m.vertices[v1].halfedge = NoHalfedge
	m.nVertices--

	// 6) Re-anchor v0, preferring a border halfedge.
	m.vertices[v0].halfedge = NoHalfedge
	for _, fan := range [][]HalfedgeID{fan0, fan1} {
		for _, x := range fan {
			if m.edgeRemoved[EdgeOf(x)] {
				continue
			}
			if m.vertices[v0].halfedge == NoHalfedge || m.IsBorder(x) {
				m.vertices[v0].halfedge = x
			}
		}
	}

	return v0, nil
}

// dissolve deletes the face of h. Of its two other sides, gone is deleted and
// keep survives, taking the place of opposite(gone) in the neighbouring loop.
//
// For the left face of h = v0→v1: gone = v1→vL, keep = vL→v0.
// For the left face of h = v1→v0: gone = vR→v1, keep = v0→vR.
func (m *Mesh) dissolve(h, gone, keep HalfedgeID, constrained EdgeFlags) {
	f := m.Face(h)
	apex := m.Target(m.Next(h))
	twin := Opposite(gone)

	// keep replaces twin in twin's loop.
	next, prev := m.Next(twin), m.Prev(twin)
	m.link(keep, next)
	m.link(prev, keep)
	tf := m.Face(twin)
	m.halfedges[keep].face = tf
	if tf != NoFace && m.faces[tf].halfedge == twin {
		m.faces[tf].halfedge = keep
	}

	// The apex may have been anchored on the deleted edge.
	for _, x := range [2]HalfedgeID{gone, twin} {
		if m.vertices[apex].halfedge == x {
			if m.Source(keep) == apex {
				m.vertices[apex].halfedge = keep
			} else {
				m.vertices[apex].halfedge = Opposite(keep)
			}
		}
	}
	// Prefer a border anchor on the apex.
	if m.IsBorder(keep) && m.Source(keep) == apex {
		m.vertices[apex].halfedge = keep
	} else if m.IsBorder(Opposite(keep)) && m.Source(Opposite(keep)) == apex {
		m.vertices[apex].halfedge = Opposite(keep)
	}

	if len(constrained) > 0 && constrained.Has(EdgeOf(gone)) {
		constrained.Set(EdgeOf(keep), true)
	}

	m.removeEdge(EdgeOf(gone))
	m.faces[f].removed = true
	m.faces[f].halfedge = NoHalfedge
	m.nFaces--
}

func (m *Mesh) removeEdge(e EdgeID) {
	m.edgeRemoved[e] = true
	m.nEdges--
}
