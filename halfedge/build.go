package halfedge

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// FromTriangles builds a mesh from a triangle soup. Each triangle lists three
// indices into points in counter-clockwise order; neighbouring triangles must
// agree on orientation. Points not referenced by any triangle become isolated
// vertices.
//
// Complexity: O(V + F) time and space.
func FromTriangles(points []r3.Vec, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{
		vertices:  make([]vertex, len(points)),
		faces:     make([]face, 0, len(triangles)),
		halfedges: make([]halfedge, 0, 3*len(triangles)+len(points)),
	}
	for i, p := range points {
		m.vertices[i] = vertex{halfedge: NoHalfedge, point: p}
	}
	m.nVertices = len(points)

	// 1) Create faces, claiming one halfedge of a (possibly new) pair per corner.
	directed := make(map[[2]int]HalfedgeID, 3*len(triangles))
	for fi, t := range triangles {
		for k := 0; k < 3; k++ {
			if t[k] < 0 || t[k] >= len(points) {
				return nil, fmt.Errorf("%w: face %d references %d", ErrVertexIndex, fi, t[k])
			}
		}
		if t[0] == t[1] || t[1] == t[2] || t[2] == t[0] {
			return nil, fmt.Errorf("%w: face %d = %v", ErrDegenerateFace, fi, t)
		}

		f := FaceID(len(m.faces))
		var loop [3]HalfedgeID
		for k := 0; k < 3; k++ {
			from, to := t[k], t[(k+1)%3]
			h, ok := directed[[2]int{from, to}]
			if !ok {
				h = m.newEdge(VertexID(from), VertexID(to))
				directed[[2]int{from, to}] = h
				directed[[2]int{to, from}] = Opposite(h)
			} else if m.halfedges[h].face != NoFace {
				return nil, fmt.Errorf("%w: %d→%d in face %d", ErrNonManifoldEdge, from, to, fi)
			}
			m.halfedges[h].face = f
			loop[k] = h
		}
		for k := 0; k < 3; k++ {
			m.link(loop[k], loop[(k+1)%3])
			if m.vertices[t[k]].halfedge == NoHalfedge {
				m.vertices[t[k]].halfedge = loop[k]
			}
		}
		m.faces = append(m.faces, face{halfedge: loop[0]})
	}
	m.nFaces = len(m.faces)

	// 2) Thread border halfedges into loops. A manifold vertex has at most one
	//    outgoing border halfedge.
	borderOut := make(map[VertexID]HalfedgeID)
	for h := range m.halfedges {
		hid := HalfedgeID(h)
		if m.halfedges[h].face != NoFace {
			continue
		}
		src := m.Source(hid)
		if _, dup := borderOut[src]; dup {
			return nil, fmt.Errorf("%w: vertex %d has two border fans", ErrNonManifoldVertex, src)
		}
		borderOut[src] = hid
	}
	for src, h := range borderOut {
		next, ok := borderOut[m.Target(h)]
		if !ok {
			return nil, fmt.Errorf("%w: border breaks at vertex %d", ErrNonManifoldVertex, m.Target(h))
		}
		m.link(h, next)
		m.vertices[src].halfedge = h
	}

	// 3) Every outgoing halfedge of a vertex must be reachable from its anchor.
	if err := m.checkFans(); err != nil {
		return nil, err
	}

	return m, nil
}

// newEdge appends an opposite pair from→to / to→from, both on the border, and
// returns the from→to halfedge.
func (m *Mesh) newEdge(from, to VertexID) HalfedgeID {
	h := HalfedgeID(len(m.halfedges))
	m.halfedges = append(m.halfedges,
		halfedge{next: NoHalfedge, prev: NoHalfedge, vertex: to, face: NoFace},
		halfedge{next: NoHalfedge, prev: NoHalfedge, vertex: from, face: NoFace},
	)
	m.edgeRemoved = append(m.edgeRemoved, false)
	m.nEdges++
	return h
}

func (m *Mesh) link(h, next HalfedgeID) {
	m.halfedges[h].next = next
	m.halfedges[next].prev = h
}

// checkFans verifies that rotating around each live vertex from its anchor
// visits every outgoing halfedge exactly once.
func (m *Mesh) checkFans() error {
	outgoing := make([]int, len(m.vertices))
	for h := range m.halfedges {
		if m.edgeRemoved[h>>1] {
			continue
		}
		outgoing[m.Source(HalfedgeID(h))]++
	}
	for v := range m.vertices {
		if m.vertices[v].removed || m.vertices[v].halfedge == NoHalfedge {
			continue
		}
		if got := m.Degree(VertexID(v)); got != outgoing[v] {
			return fmt.Errorf("%w: vertex %d reaches %d of %d outgoing halfedges",
				ErrNonManifoldVertex, v, got, outgoing[v])
		}
	}
	return nil
}
