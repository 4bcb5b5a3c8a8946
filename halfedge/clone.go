package halfedge

import "gonum.org/v1/gonum/spatial/r3"

// Clone returns a deep copy of m. Ids in the copy equal those in m.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		halfedges:   make([]halfedge, len(m.halfedges)),
		edgeRemoved: make([]bool, len(m.edgeRemoved)),
		vertices:    make([]vertex, len(m.vertices)),
		faces:       make([]face, len(m.faces)),
		nVertices:   m.nVertices,
		nEdges:      m.nEdges,
		nFaces:      m.nFaces,
	}
	copy(c.halfedges, m.halfedges)
	copy(c.edgeRemoved, m.edgeRemoved)
	copy(c.vertices, m.vertices)
	copy(c.faces, m.faces)
	return c
}

// Compact exports the live part of m as a triangle soup with dense indices:
// live vertices in ascending id order, then live faces in ascending id order.
// Faces that vanished leave their surviving vertices and edges behind, so a
// collapsed mesh may export points that no triangle references.
func (m *Mesh) Compact() ([]r3.Vec, [][3]int) {
	remap := make([]int, len(m.vertices))
	points := make([]r3.Vec, 0, m.nVertices)
	for v := range m.vertices {
		if m.vertices[v].removed {
			remap[v] = -1
			continue
		}
		remap[v] = len(points)
		points = append(points, m.vertices[v].point)
	}

	triangles := make([][3]int, 0, m.nFaces)
	for f := range m.faces {
		if m.faces[f].removed {
			continue
		}
		c := m.FaceVertices(FaceID(f))
		triangles = append(triangles, [3]int{remap[c[0]], remap[c[1]], remap[c[2]]})
	}
	return points, triangles
}
